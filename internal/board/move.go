package board

import "fmt"

// LaneMove is one half-move in one slot: single-bit origin and destination
// bitboards. The zero value is the null move.
type LaneMove struct {
	From Bitboard
	To   Bitboard
}

// NullMove signals "no move".
var NullMove = LaneMove{}

// NewLaneMove creates a move between two squares.
func NewLaneMove(from, to Square) LaneMove {
	return LaneMove{From: from.Bitboard(), To: to.Bitboard()}
}

// IsNull reports whether either side of the move is empty.
func (m LaneMove) IsNull() bool {
	return m.From == 0 || m.To == 0
}

// FromSquare returns the origin square.
func (m LaneMove) FromSquare() Square { return m.From.LSB() }

// ToSquare returns the destination square.
func (m LaneMove) ToSquare() Square { return m.To.LSB() }

// String returns UCI coordinates ("e2e4"), "0000" for the null move.
func (m LaneMove) String() string {
	if m.IsNull() {
		return "0000"
	}
	return m.FromSquare().String() + m.ToSquare().String()
}

// Broadcast returns the batched move playing m in every slot.
func (m LaneMove) Broadcast() Move {
	return Move{From: Broadcast(m.From), To: Broadcast(m.To)}
}

// Move is a batched move: slot i of From and To carries slot i's half-move,
// or zero when that slot does not move this step. It is the only thing ever
// applied to a Position.
type Move struct {
	From Lane
	To   Lane
}

// PackMoves builds a batched move from one LaneMove per slot.
func PackMoves(moves [LaneWidth]LaneMove) Move {
	return Move{
		From: NewLane(moves[0].From, moves[1].From, moves[2].From, moves[3].From),
		To:   NewLane(moves[0].To, moves[1].To, moves[2].To, moves[3].To),
	}
}

// Slot returns the half-move carried in one slot.
func (m Move) Slot(slot int) LaneMove {
	return LaneMove{From: m.From.Extract(slot), To: m.To.Extract(slot)}
}

// Batch groups moves by four into batched moves. A short last group is
// padded by repeating its last move, so a padded slot searches a duplicate
// continuation rather than standing still.
func Batch(moves []LaneMove) []Move {
	if len(moves) == 0 {
		return nil
	}
	batches := make([]Move, 0, (len(moves)+LaneWidth-1)/LaneWidth)
	for i := 0; i < len(moves); i += LaneWidth {
		var group [LaneWidth]LaneMove
		for j := range group {
			k := min(i+j, len(moves)-1)
			group[j] = moves[k]
		}
		batches = append(batches, PackMoves(group))
	}
	return batches
}

// ParseLaneMove finds the generated move of one slot matching UCI coordinates.
// A fifth (promotion) character is accepted and ignored.
func ParseLaneMove(s string, p *Position, slot int) (LaneMove, error) {
	if len(s) < 4 {
		return NullMove, fmt.Errorf("invalid move string: %s", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, err
	}

	want := NewLaneMove(from, to)
	moves := GenerateMoves(p, slot)
	if !moves.Contains(want) {
		return NullMove, fmt.Errorf("move %s not available", s)
	}
	return want, nil
}

// MaxMoves is the capacity of a MoveList. Ordinary chess positions stay far
// below it; moves generated past it in crowded layouts are dropped.
const MaxMoves = 256

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [MaxMoves]LaneMove
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list. A full list ignores the move.
func (ml *MoveList) Add(m LaneMove) {
	if ml.count == MaxMoves {
		return
	}
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) LaneMove {
	return ml.moves[i]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m LaneMove) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice backed by the list.
func (ml *MoveList) Slice() []LaneMove {
	return ml.moves[:ml.count]
}
