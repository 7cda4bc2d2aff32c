// Package verify cross-checks move generation against dragontoothmg, an
// independent magic-bitboard move generator.
package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ianagbip1oti/vesper/internal/board"
)

// Mismatch kinds
const (
	KindSlider = "slider"
	KindMove   = "move"
	KindPlanes = "planes"
)

// Mismatch is one disagreement with the reference generator.
type Mismatch struct {
	FEN    string
	Kind   string
	Detail string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s (%s)", m.Kind, m.Detail, m.FEN)
}

// Report aggregates a verification run.
type Report struct {
	Positions  int
	Moves      int // reference moves compared
	Sliders    int // slider attack sets compared
	Mismatches []Mismatch
}

// OK reports whether the run found no disagreement.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// CheckSliders compares the flood-fill attack set of every slider in one
// slot with dragontoothmg's magic lookup for the same occupancy.
func CheckSliders(pos *board.Position, slot int) (checked int, mismatches []Mismatch) {
	s := pos.Slot(slot)
	occ := s.Occupied()
	empty := board.Broadcast(^occ)

	for sliders := s.Sliders; sliders != 0; {
		from := sliders.PopLowBit()
		sq := from.LSB()
		gen := board.Broadcast(from)

		var ours, ref board.Bitboard
		if from&s.Diagonal != 0 {
			ours |= gen.DiagonalAttacks(empty).Extract(0)
			ref |= board.Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ)))
		}
		if from&s.Orthogonal != 0 {
			ours |= gen.OrthogonalAttacks(empty).Extract(0)
			ref |= board.Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ)))
		}

		checked++
		if ours != ref {
			mismatches = append(mismatches, Mismatch{
				Kind: KindSlider,
				Detail: fmt.Sprintf("slot %d slider on %s: extra %x, missing %x",
					slot, sq, uint64(ours&^ref), uint64(ref&^ours)),
			})
		}
	}
	return checked, mismatches
}

// CheckMoves verifies that every legal reference move that is not castling,
// en passant or a promotion appears in lane 0's pseudo-legal move list.
func CheckMoves(fen string) (checked int, mismatches []Mismatch, err error) {
	ref, err := parseReference(fen)
	if err != nil {
		return 0, nil, err
	}
	pos := board.ParseLayout(fen)
	ours := board.GenerateMoves(pos, 0)

	occupied := ref.White.All | ref.Black.All
	for _, m := range ref.GenerateLegalMoves() {
		if isSpecial(&ref, m, occupied) {
			continue
		}
		checked++
		lm := board.NewLaneMove(board.Square(m.From()), board.Square(m.To()))
		if !ours.Contains(lm) {
			mismatches = append(mismatches, Mismatch{
				FEN:    fen,
				Kind:   KindMove,
				Detail: "missing " + lm.String(),
			})
		}
	}
	return checked, mismatches, nil
}

// CheckPlanes verifies that ParseLayout puts every piece where the reference
// parser does.
func CheckPlanes(fen string) ([]Mismatch, error) {
	ref, err := parseReference(fen)
	if err != nil {
		return nil, err
	}
	want := layoutOf(&ref)
	got, exp := board.ParseLayout(fen).Slot(0), board.ParseLayout(want).Slot(0)
	if got.SideToMove() != exp.SideToMove() {
		return []Mismatch{{FEN: fen, Kind: KindPlanes, Detail: "side to move differs"}}, nil
	}
	got.Metadata, exp.Metadata = 0, 0
	if got != exp {
		return []Mismatch{{FEN: fen, Kind: KindPlanes, Detail: "placement differs from " + want}}, nil
	}
	return nil, nil
}

// isSpecial reports castling, en passant and promotion moves, which the
// pseudo-legal generator leaves out.
func isSpecial(b *dragontoothmg.Board, m dragontoothmg.Move, occupied uint64) bool {
	if m.Promote() != dragontoothmg.Nothing {
		return true
	}
	from, to := m.From(), m.To()
	fromBB, toBB := uint64(1)<<from, uint64(1)<<to

	kings := b.White.Kings | b.Black.Kings
	if kings&fromBB != 0 && absDiff(from%8, to%8) == 2 {
		return true
	}
	pawns := b.White.Pawns | b.Black.Pawns
	if pawns&fromBB != 0 && from%8 != to%8 && occupied&toBB == 0 {
		return true
	}
	return false
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// parseReference parses fen with dragontoothmg, which panics on malformed
// input.
func parseReference(fen string) (b dragontoothmg.Board, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse %q: %v", fen, r)
		}
	}()
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return b, fmt.Errorf("parse %q: want at least 4 fields", fen)
	}
	// move counters are optional
	fields = append(fields, "0", "1")[:6]
	return dragontoothmg.ParseFen(strings.Join(fields, " ")), nil
}

// Check runs every comparison on one position.
func Check(fen string) (Report, error) {
	r := Report{Positions: 1}

	planes, err := CheckPlanes(fen)
	if err != nil {
		return r, err
	}
	r.Mismatches = append(r.Mismatches, planes...)

	moves, mm, err := CheckMoves(fen)
	if err != nil {
		return r, err
	}
	r.Moves = moves
	r.Mismatches = append(r.Mismatches, mm...)

	pos := board.ParseLayout(fen)
	for slot := 0; slot < board.LaneWidth; slot++ {
		n, mm := CheckSliders(pos, slot)
		r.Sliders += n
		for i := range mm {
			mm[i].FEN = fen
		}
		r.Mismatches = append(r.Mismatches, mm...)
	}
	return r, nil
}

// Run checks every position using up to workers goroutines. The report
// lists mismatches in input order. A malformed position aborts the run.
func Run(ctx context.Context, fens []string, workers int) (Report, error) {
	log := zerolog.Ctx(ctx)
	results := make([]Report, len(fens))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, fen := range fens {
		i, fen := i, fen
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Check(fen)
			if err != nil {
				return fmt.Errorf("position %d: %w", i+1, err)
			}
			if !r.OK() {
				log.Debug().Int("position", i+1).Int("mismatches", len(r.Mismatches)).Msg("mismatch")
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var total Report
	for _, r := range results {
		total.Positions += r.Positions
		total.Moves += r.Moves
		total.Sliders += r.Sliders
		total.Mismatches = append(total.Mismatches, r.Mismatches...)
	}
	log.Info().
		Int("positions", total.Positions).
		Int("moves", total.Moves).
		Int("sliders", total.Sliders).
		Int("mismatches", len(total.Mismatches)).
		Msg("verify-done")
	return total, nil
}
