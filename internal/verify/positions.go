package verify

import (
	"math/rand"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// layoutOf renders the piece placement and side to move of a reference
// board. Castling and en-passant fields are written as "-".
func layoutOf(b *dragontoothmg.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			c := pieceChar(b, uint64(1)<<(rank*8+file))
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if b.Wtomove {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

func pieceChar(b *dragontoothmg.Board, bb uint64) byte {
	if c := sideChar(&b.White, bb); c != 0 {
		return c - 'a' + 'A'
	}
	return sideChar(&b.Black, bb)
}

func sideChar(bbs *dragontoothmg.Bitboards, bb uint64) byte {
	switch {
	case bbs.Pawns&bb != 0:
		return 'p'
	case bbs.Knights&bb != 0:
		return 'n'
	case bbs.Bishops&bb != 0:
		return 'b'
	case bbs.Rooks&bb != 0:
		return 'r'
	case bbs.Queens&bb != 0:
		return 'q'
	case bbs.Kings&bb != 0:
		return 'k'
	}
	return 0
}

// RandomPositions plays n random legal games of up to plies half-moves from
// the start position with the reference generator and returns the final
// position of each. A game that ends early contributes its last position.
func RandomPositions(n, plies int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	fens := make([]string, 0, n)
	for i := 0; i < n; i++ {
		b := dragontoothmg.ParseFen(dragontoothmg.Startpos)
		length := 1 + rng.Intn(max(plies, 1))
		for ply := 0; ply < length; ply++ {
			moves := b.GenerateLegalMoves()
			if len(moves) == 0 {
				break
			}
			b.Apply(moves[rng.Intn(len(moves))])
		}
		fens = append(fens, layoutOf(&b))
	}
	return fens
}
