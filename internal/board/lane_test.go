package board

import (
	"math/rand"
	"testing"
)

func TestLaneConstructors(t *testing.T) {
	l := NewLane(1, 2, 3, 4)
	for i, want := range []Bitboard{1, 2, 3, 4} {
		if got := l.Extract(i); got != want {
			t.Errorf("Extract(%d) = %d, want %d", i, got, want)
		}
	}

	b := Broadcast(0xDEADBEEF)
	for i := 0; i < LaneWidth; i++ {
		if b.Extract(i) != 0xDEADBEEF {
			t.Errorf("Broadcast slot %d = %x", i, b.Extract(i))
		}
	}
}

func TestLaneExtractOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Extract(4) did not panic")
		}
	}()
	slot := 4
	EmptyLane.Extract(slot)
}

func TestLaneBitwise(t *testing.T) {
	a := NewLane(0b1100, 0, Universe, 0xF0)
	b := NewLane(0b1010, Universe, 0, 0x0F)

	if got, want := a.And(b), NewLane(0b1000, 0, 0, 0); got != want {
		t.Errorf("And = %v, want %v", got, want)
	}
	if got, want := a.Or(b), NewLane(0b1110, Universe, Universe, 0xFF); got != want {
		t.Errorf("Or = %v, want %v", got, want)
	}
	if got, want := a.Xor(b), NewLane(0b0110, Universe, Universe, 0xFF); got != want {
		t.Errorf("Xor = %v, want %v", got, want)
	}
	if got, want := a.AndNot(b), NewLane(0b0100, 0, Universe, 0xF0); got != want {
		t.Errorf("AndNot = %v, want %v", got, want)
	}
	if got, want := a.Not(), NewLane(^Bitboard(0b1100), Universe, 0, ^Bitboard(0xF0)); got != want {
		t.Errorf("Not = %v, want %v", got, want)
	}
}

func TestLaneZeroMasks(t *testing.T) {
	l := NewLane(0, 1<<63, 0, 42)
	if got, want := l.IsZeroMask(), NewLane(Universe, 0, Universe, 0); got != want {
		t.Errorf("IsZeroMask = %v, want %v", got, want)
	}
	if got, want := l.IsNotZeroMask(), NewLane(0, Universe, 0, Universe); got != want {
		t.Errorf("IsNotZeroMask = %v, want %v", got, want)
	}
	if l.IsZero() {
		t.Error("IsZero true for non-empty lane")
	}
	if !EmptyLane.IsZero() {
		t.Error("IsZero false for empty lane")
	}
}

func TestIsZeroKernel(t *testing.T) {
	values := []uint64{0, 1, 0, 2, 1 << 62, 0, 1 << 63, 0, ^uint64(0), ^uint64(0) >> 1, 0x8000000000000001}
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 64; i++ {
		values = append(values, rng.Uint64()>>uint(rng.Intn(64)))
	}

	for i := 0; i+LaneWidth <= len(values); i++ {
		var in Lane
		copy(in[:], values[i:i+LaneWidth])

		got := in.IsZeroMask()
		for slot, v := range in {
			want := uint64(0)
			if v == 0 {
				want = ^uint64(0)
			}
			if got[slot] != want {
				t.Errorf("IsZeroMask slot %d of %x = %x, want %x", slot, v, got[slot], want)
			}
		}
	}
}

func TestShiftWraparound(t *testing.T) {
	hFile := Broadcast(FileH)
	aFile := Broadcast(FileA)

	tests := []struct {
		name  string
		shift func(Lane) Lane
		from  Lane
	}{
		{"East off h-file", Lane.East, hFile},
		{"NorthEast off h-file", Lane.NorthEast, hFile},
		{"SouthEast off h-file", Lane.SouthEast, hFile},
		{"West off a-file", Lane.West, aFile},
		{"NorthWest off a-file", Lane.NorthWest, aFile},
		{"SouthWest off a-file", Lane.SouthWest, aFile},
		{"North off rank 8", Lane.North, Broadcast(0xFF << 56)},
		{"South off rank 1", Lane.South, Broadcast(0xFF)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.shift(tc.from); !got.IsZero() {
				t.Errorf("got %v, want empty", got)
			}
		})
	}
}

func TestShiftDirections(t *testing.T) {
	e4 := Broadcast(NewSquare(4, 3).Bitboard())
	sq := func(s string) Bitboard {
		x, _ := ParseSquare(s)
		return x.Bitboard()
	}

	tests := []struct {
		name  string
		shift func(Lane) Lane
		want  Bitboard
	}{
		{"North", Lane.North, sq("e5")},
		{"South", Lane.South, sq("e3")},
		{"East", Lane.East, sq("f4")},
		{"West", Lane.West, sq("d4")},
		{"NorthEast", Lane.NorthEast, sq("f5")},
		{"NorthWest", Lane.NorthWest, sq("d5")},
		{"SouthEast", Lane.SouthEast, sq("f3")},
		{"SouthWest", Lane.SouthWest, sq("d3")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.shift(e4); got != Broadcast(tc.want) {
				t.Errorf("got %v, want %v", got, Broadcast(tc.want))
			}
		})
	}
}

func TestFillStopsAtEdge(t *testing.T) {
	empty := FullLane

	tests := []struct {
		name string
		from string
		fill func(Lane, Lane) Lane
		ray  []string
	}{
		{"North from a1", "a1", Lane.FillNorth, []string{"a2", "a3", "a4", "a5", "a6", "a7", "a8"}},
		{"South from h8", "h8", Lane.FillSouth, []string{"h7", "h6", "h5", "h4", "h3", "h2", "h1"}},
		{"East from a4", "a4", Lane.FillEast, []string{"b4", "c4", "d4", "e4", "f4", "g4", "h4"}},
		{"East from g4", "g4", Lane.FillEast, []string{"h4"}},
		{"West from c5", "c5", Lane.FillWest, []string{"b5", "a5"}},
		{"NorthEast from a1", "a1", Lane.FillNorthEast, []string{"b2", "c3", "d4", "e5", "f6", "g7", "h8"}},
		{"NorthWest from e1", "e1", Lane.FillNorthWest, []string{"d2", "c3", "b4", "a5"}},
		{"SouthEast from f3", "f3", Lane.FillSouthEast, []string{"g2", "h1"}},
		{"SouthWest from h2", "h2", Lane.FillSouthWest, []string{"g1"}},
		{"East from h1", "h1", Lane.FillEast, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, _ := ParseSquare(tc.from)
			gen := Broadcast(from.Bitboard())
			var want Bitboard
			for _, s := range tc.ray {
				sq, _ := ParseSquare(s)
				want |= sq.Bitboard()
			}
			got := tc.fill(gen, empty).Xor(gen)
			if got != Broadcast(want) {
				t.Errorf("ray = %v, want %v", got, Broadcast(want))
			}
			if n := got.Extract(0).PopCount(); n > 7 {
				t.Errorf("ray length %d > 7", n)
			}
		})
	}
}

func TestFillStopsBeforeBlocker(t *testing.T) {
	a1 := Broadcast(NewSquare(0, 0).Bitboard())
	// blockers on a4 in slot 0, a2 in slot 1, none in slot 2, a8 in slot 3
	occ := NewLane(NewSquare(0, 3).Bitboard(), NewSquare(0, 1).Bitboard(), 0, NewSquare(0, 7).Bitboard())
	empty := occ.Not()

	flood := a1.FillNorth(empty)
	want := NewLane(
		FileA&0x0000000000FFFFFF, // a1-a3
		FileA&0xFF,               // a1 only
		FileA,
		FileA&0x00FFFFFFFFFFFFFF, // a1-a7
	)
	if flood != want {
		t.Errorf("FillNorth = %v, want %v", flood, want)
	}

	attacks := a1.OrthogonalAttacks(empty).And(Broadcast(FileA))
	if attacks.Extract(0) != FileA&0x00000000FFFFFF00 {
		t.Errorf("slot 0 attack ray should include the a4 blocker: %x", attacks.Extract(0))
	}
	if attacks.Extract(1) != NewSquare(0, 1).Bitboard() {
		t.Errorf("slot 1 attack ray should be a2 only: %x", attacks.Extract(1))
	}
}

func TestLeaperPatterns(t *testing.T) {
	corners := NewLane(
		NewSquare(0, 0).Bitboard(), // a1
		NewSquare(7, 0).Bitboard(), // h1
		NewSquare(4, 3).Bitboard(), // e4
		NewSquare(7, 7).Bitboard(), // h8
	)

	knight := corners.KnightAttacks()
	for slot, want := range []int{2, 2, 8, 2} {
		if got := knight.Extract(slot).PopCount(); got != want {
			t.Errorf("knight slot %d: %d targets, want %d", slot, got, want)
		}
	}

	king := corners.KingAttacks()
	for slot, want := range []int{3, 3, 8, 3} {
		if got := king.Extract(slot).PopCount(); got != want {
			t.Errorf("king slot %d: %d targets, want %d", slot, got, want)
		}
	}
}

// Every operation must treat slots independently: computing on a packed lane
// gives the same slot results as computing on each slot broadcast alone.
func TestSlotIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		gen := NewLane(Bitboard(rng.Uint64()&rng.Uint64()), Bitboard(rng.Uint64()&rng.Uint64()),
			Bitboard(rng.Uint64()&rng.Uint64()), Bitboard(rng.Uint64()&rng.Uint64()))
		empty := NewLane(Bitboard(rng.Uint64()), Bitboard(rng.Uint64()),
			Bitboard(rng.Uint64()), Bitboard(rng.Uint64()))

		packed := gen.DiagonalAttacks(empty).Or(gen.OrthogonalAttacks(empty)).Or(gen.KnightAttacks())
		for slot := 0; slot < LaneWidth; slot++ {
			g, e := Broadcast(gen.Extract(slot)), Broadcast(empty.Extract(slot))
			alone := g.DiagonalAttacks(e).Or(g.OrthogonalAttacks(e)).Or(g.KnightAttacks())
			if packed.Extract(slot) != alone.Extract(0) {
				t.Fatalf("iteration %d slot %d: packed %x, alone %x", iter, slot, packed.Extract(slot), alone.Extract(0))
			}
		}
	}
}
