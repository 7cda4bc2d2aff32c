package board

import "fmt"

// LaneWidth is the number of independent positions carried by one Lane.
const LaneWidth = 4

// Lane holds four 64-bit slots that are always operated on together, one
// slot per independent position. Nothing crosses slot boundaries except
// Extract.
//
// The primitive kernels (and, or, xor, shifts, zero test) come from lane_simd.go when
// built with GOEXPERIMENT=simd on amd64 and from lane_scalar.go otherwise.
type Lane [LaneWidth]uint64

// EmptyLane has every slot cleared.
var EmptyLane = Lane{}

// FullLane has every bit of every slot set.
var FullLane = Broadcast(Universe)

// Broadcast copies one bitboard into all four slots.
func Broadcast(b Bitboard) Lane {
	v := uint64(b)
	return Lane{v, v, v, v}
}

// NewLane packs four bitboards into slots 0-3.
func NewLane(a, b, c, d Bitboard) Lane {
	return Lane{uint64(a), uint64(b), uint64(c), uint64(d)}
}

// Extract returns the bitboard held in the given slot. Slots outside 0-3
// panic with an index error.
func (l Lane) Extract(slot int) Bitboard {
	return Bitboard(l[slot])
}

// And returns the slot-wise intersection.
func (l Lane) And(o Lane) Lane { return and4(l, o) }

// Or returns the slot-wise union.
func (l Lane) Or(o Lane) Lane { return or4(l, o) }

// Xor returns the slot-wise symmetric difference.
func (l Lane) Xor(o Lane) Lane { return xor4(l, o) }

// AndNot returns l with the bits of o cleared.
func (l Lane) AndNot(o Lane) Lane { return andNot4(l, o) }

// Not returns the slot-wise complement.
func (l Lane) Not() Lane { return xor4(l, FullLane) }

// IsZeroMask returns all ones in every slot that is zero and all zeros in
// every other slot.
func (l Lane) IsZeroMask() Lane { return isZero4(l) }

// IsNotZeroMask is the complement of IsZeroMask.
func (l Lane) IsNotZeroMask() Lane {
	return l.IsZeroMask().Not()
}

// IsZero reports whether all four slots are empty.
func (l Lane) IsZero() bool {
	return l[0]|l[1]|l[2]|l[3] == 0
}

// String prints the four slots in hex.
func (l Lane) String() string {
	return fmt.Sprintf("Lane(%016x, %016x, %016x, %016x)", l[0], l[1], l[2], l[3])
}
