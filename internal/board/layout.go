package board

import "strings"

// StartLayout is the standard starting position.
const StartLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseLayout builds a Position from a rank/file layout record: ranks from 8
// down to 1 separated by '/', piece letters (uppercase White), digits for
// runs of empty squares, then an optional side to move ("w" or "b"),
// castling field and en-passant square. Move counters are accepted and
// ignored.
//
// ParseLayout never fails. Characters it does not recognise place nothing
// but still use up a file, and squares beyond the board are dropped. All
// four slots receive the same position.
func ParseLayout(layout string) *Position {
	fields := strings.Fields(layout)
	var s SlotView
	if len(fields) > 0 {
		parsePlacement(&s, fields[0])
	}

	meta := Bitboard(NoSquare) << MetaEnPassant
	if len(fields) > 1 && fields[1] == "b" {
		meta |= metaTurnMask
	}
	if len(fields) > 2 {
		meta |= Bitboard(parseCastling(fields[2])) << MetaCastling
	}
	if len(fields) > 3 && fields[3] != "-" {
		if sq, err := ParseSquare(fields[3]); err == nil {
			meta = meta&^metaEnPassantMask | Bitboard(sq)<<MetaEnPassant
		}
	}
	s.Metadata = meta

	return &Position{
		Pawns:      Broadcast(s.Pawns),
		Leapers:    Broadcast(s.Leapers),
		Sliders:    Broadcast(s.Sliders),
		Kings:      Broadcast(s.Kings),
		White:      Broadcast(s.White),
		Black:      Broadcast(s.Black),
		Diagonal:   Broadcast(s.Diagonal),
		Orthogonal: Broadcast(s.Orthogonal),
		Metadata:   Broadcast(s.Metadata),
	}
}

func parsePlacement(s *SlotView, placement string) {
	for i, row := range strings.Split(placement, "/") {
		rank := 7 - i
		if rank < 0 {
			return
		}
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '0' && c <= '9' {
				file += int(c - '0')
				continue
			}
			if pc, ok := pieceFromChar(c); ok && file < 8 {
				place(s, pc, NewSquare(file, rank).Bitboard())
			}
			file++
		}
	}
}

func place(s *SlotView, pc Piece, bb Bitboard) {
	if pc.Color == White {
		s.White |= bb
	} else {
		s.Black |= bb
	}
	switch pc.Type {
	case Pawn:
		s.Pawns |= bb
	case Knight:
		s.Leapers |= bb
	case Bishop:
		s.Sliders |= bb
		s.Diagonal |= bb
	case Rook:
		s.Sliders |= bb
		s.Orthogonal |= bb
	case Queen:
		s.Sliders |= bb
		s.Diagonal |= bb
		s.Orthogonal |= bb
	case King:
		s.Kings |= bb
	}
}

func parseCastling(field string) int {
	rights := 0
	for _, c := range field {
		switch c {
		case 'K':
			rights |= CastleWhiteKing
		case 'Q':
			rights |= CastleWhiteQueen
		case 'k':
			rights |= CastleBlackKing
		case 'q':
			rights |= CastleBlackQueen
		}
	}
	return rights
}
