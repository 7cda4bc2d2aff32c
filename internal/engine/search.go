package engine

import (
	"golang.org/x/exp/slices"

	"github.com/ianagbip1oti/vesper/internal/board"
)

// Search constants
const (
	DefaultDepth = 4
	MaxDepth     = 64

	// Lower than any score Evaluate can produce.
	initialBestScore = -2_000_000
)

// Searcher runs the batched greedy search and counts the work it does.
//
// Only the root explores alternatives: lane 0's moves are ordered captures
// first, packed four to a batch and each batch is played on a copy of the
// position. Below the root every slot follows its first generated move, so
// one batched application advances four forced continuations at once.
type Searcher struct {
	nodes uint64
	moves board.MoveList
}

// NewSearcher creates a new searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Reset clears the node counter.
func (s *Searcher) Reset() {
	s.nodes = 0
}

// Nodes returns the number of batched applications and evaluations since
// the last Reset.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search returns the best lane 0 move and its score from the point of view
// of lane 0's side to move. With no moves available it returns the null
// move and the static score of lane 0.
//
// Depth 0 and below behave like depth 1: every root batch is played once and
// scored statically.
func (s *Searcher) Search(pos *board.Position, depth int) (board.LaneMove, int) {
	s.moves.Clear()
	board.GenerateMovesInto(&s.moves, pos, 0)

	sign := 1
	if pos.SideToMove(0) == board.Black {
		sign = -1
	}

	if s.moves.Len() == 0 {
		s.nodes++
		return board.NullMove, sign * Evaluate(pos)[0]
	}

	moves := make([]board.LaneMove, s.moves.Len())
	copy(moves, s.moves.Slice())
	orderCaptures(moves, pos.Slot(0).Occupied())

	bestMove, bestScore := moves[0], initialBestScore
	for _, batch := range board.Batch(moves) {
		next := pos.Copy()
		next.ApplyMove(batch)
		s.nodes++

		scores := s.descend(next, depth-1)
		for slot, score := range scores {
			if score *= sign; score > bestScore {
				bestScore = score
				bestMove = batch.Slot(slot)
			}
		}
	}
	return bestMove, bestScore
}

// descend plays each slot's first generated move until depth runs out or no
// slot can move, then evaluates.
func (s *Searcher) descend(pos *board.Position, depth int) [board.LaneWidth]int {
	var ml board.MoveList
	for ; depth > 0; depth-- {
		var step [board.LaneWidth]board.LaneMove
		anyMove := false
		for slot := range step {
			ml.Clear()
			board.GenerateMovesInto(&ml, pos, slot)
			if ml.Len() > 0 {
				step[slot] = ml.Get(0)
				anyMove = true
			}
		}
		if !anyMove {
			break
		}
		pos.ApplyMove(board.PackMoves(step))
		s.nodes++
	}
	s.nodes++
	return Evaluate(pos)
}

// orderCaptures moves captures ahead of quiet moves, keeping generation
// order within each group.
func orderCaptures(moves []board.LaneMove, occupied board.Bitboard) {
	slices.SortStableFunc(moves, func(a, b board.LaneMove) bool {
		return a.To&occupied != 0 && b.To&occupied == 0
	})
}

// Search returns the best move for lane 0's side to move, or the null move
// when lane 0 has none.
func Search(pos *board.Position, depth int) board.LaneMove {
	m, _ := NewSearcher().Search(pos, depth)
	return m
}
