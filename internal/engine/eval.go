// Package engine scores four-lane positions and runs the batched greedy search.
package engine

import (
	"github.com/ianagbip1oti/vesper/internal/board"
)

// Material values by piece class.
const (
	PawnValue   = 100
	LeaperValue = 300
	SliderValue = 500
	KingValue   = 10000
)

const (
	mobilityWeight = 5  // per attacked square, white minus black
	tensionWeight  = 2  // per square attacked by both sides
	tempoBonus     = 10 // for the side to move
)

// Evaluate returns one score per slot, in centipawns from White's point of
// view. Only material, mobility, tension and side to move are counted.
func Evaluate(pos *board.Position) [board.LaneWidth]int {
	whiteAttacks := board.Attacks(pos, pos.White, true)
	blackAttacks := board.Attacks(pos, pos.Black, false)
	tension := whiteAttacks.And(blackAttacks)

	var scores [board.LaneWidth]int
	for slot := range scores {
		s := pos.Slot(slot)

		score := balance(s.Pawns, s)*PawnValue +
			balance(s.Leapers, s)*LeaperValue +
			balance(s.Sliders, s)*SliderValue +
			balance(s.Kings, s)*KingValue

		score += (whiteAttacks.Extract(slot).PopCount() - blackAttacks.Extract(slot).PopCount()) * mobilityWeight
		score += tension.Extract(slot).PopCount() * tensionWeight

		if s.SideToMove() == board.White {
			score += tempoBonus
		} else {
			score -= tempoBonus
		}

		scores[slot] = score
	}
	return scores
}

// balance is the white count minus the black count of one piece class.
func balance(class board.Bitboard, s board.SlotView) int {
	return (class & s.White).PopCount() - (class & s.Black).PopCount()
}
