package engine

import (
	"testing"

	"github.com/ianagbip1oti/vesper/internal/board"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   int
	}{
		// symmetric, no contact: only the tempo bonus
		{"start white to move", board.StartLayout, 10},
		{"start black to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1", -10},
		// pawn is 100, plus one extra attacked square (b3)
		{"extra pawn", "k7/8/8/8/8/8/P7/7K w", 100 + 5 + 10},
		// kings share c4, d4 and e4
		{"tension", "8/8/8/3k4/8/3K4/8/8 w", 3*2 + 10},
		// missing black king
		{"lone white king", "8/8/8/8/8/8/8/7K b", KingValue + 3*5 - 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores := Evaluate(board.ParseLayout(tc.layout))
			for slot, got := range scores {
				if got != tc.want {
					t.Errorf("slot %d: Evaluate = %d, want %d", slot, got, tc.want)
				}
			}
		})
	}
}

func TestEvaluateSlotsIndependent(t *testing.T) {
	pos := board.NewPosition()
	// slot 2 loses the white queen
	d1 := uint64(board.NewSquare(3, 0).Bitboard())
	pos.Sliders[2] &^= d1
	pos.Diagonal[2] &^= d1
	pos.Orthogonal[2] &^= d1
	pos.White[2] &^= d1

	scores := Evaluate(pos)
	if scores[0] != scores[1] || scores[1] != scores[3] {
		t.Errorf("untouched slots disagree: %v", scores)
	}
	if scores[2] >= scores[0]-SliderValue+100 {
		t.Errorf("slot 2 score %d does not reflect the missing queen (slot 0 %d)", scores[2], scores[0])
	}
}
