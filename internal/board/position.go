package board

import (
	"fmt"
	"strings"
)

// Metadata layout, per slot.
const (
	MetaTurn      = 0 // 1 bit: 0 = white to move, 1 = black
	MetaCastling  = 1 // 4 bits: K, Q, k, q
	MetaEnPassant = 5 // 7 bits: target square, 64 = none

	metaTurnMask      Bitboard = 1 << MetaTurn
	metaCastlingMask  Bitboard = 0xF << MetaCastling
	metaEnPassantMask Bitboard = 0x7F << MetaEnPassant
)

// Castling rights bits inside the castling field.
const (
	CastleWhiteKing = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// Position is four independent chess positions stored as nine planes, one
// slot per position.
//
// Pawns, Leapers, Sliders and Kings are the piece classes and never overlap.
// White and Black partition the occupied squares. Diagonal and Orthogonal
// are mover traits and only mean something on Sliders: both traits is a
// queen, one of them a bishop or rook.
type Position struct {
	Pawns   Lane
	Leapers Lane
	Sliders Lane
	Kings   Lane

	White Lane
	Black Lane

	Diagonal   Lane
	Orthogonal Lane

	Metadata Lane
}

// NewPosition creates the starting position in all four slots.
func NewPosition() *Position {
	return ParseLayout(StartLayout)
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// Occupied returns the union of the piece-class planes.
func (p *Position) Occupied() Lane {
	return p.Pawns.Or(p.Leapers).Or(p.Sliders).Or(p.Kings)
}

// Empty returns the complement of Occupied.
func (p *Position) Empty() Lane {
	return p.Occupied().Not()
}

// SideToMove returns the side to move in the given slot.
func (p *Position) SideToMove(slot int) Color {
	return Color(p.Metadata.Extract(slot) & metaTurnMask)
}

// Slot returns the scalar view of one slot.
func (p *Position) Slot(slot int) SlotView {
	return SlotView{
		Pawns:      p.Pawns.Extract(slot),
		Leapers:    p.Leapers.Extract(slot),
		Sliders:    p.Sliders.Extract(slot),
		Kings:      p.Kings.Extract(slot),
		White:      p.White.Extract(slot),
		Black:      p.Black.Extract(slot),
		Diagonal:   p.Diagonal.Extract(slot),
		Orthogonal: p.Orthogonal.Extract(slot),
		Metadata:   p.Metadata.Extract(slot),
	}
}

// PieceAt returns the piece on sq in the given slot.
func (p *Position) PieceAt(slot int, sq Square) Piece {
	return p.Slot(slot).PieceAt(sq)
}

// Validate checks the plane invariants of every slot.
func (p *Position) Validate() error {
	for slot := 0; slot < LaneWidth; slot++ {
		if err := p.Slot(slot).Validate(); err != nil {
			return fmt.Errorf("slot %d: %w", slot, err)
		}
	}
	return nil
}

// String draws slot 0.
func (p *Position) String() string {
	return p.Slot(0).String()
}

// SlotView is one slot of a Position unpacked into plain bitboards. It is a
// copy: writing to it does not touch the Position.
type SlotView struct {
	Pawns, Leapers, Sliders, Kings Bitboard
	White, Black                   Bitboard
	Diagonal, Orthogonal           Bitboard
	Metadata                       Bitboard
}

// Occupied returns every occupied square of the slot.
func (s SlotView) Occupied() Bitboard {
	return s.Pawns | s.Leapers | s.Sliders | s.Kings
}

// SideToMove returns the side to move.
func (s SlotView) SideToMove() Color {
	return Color(s.Metadata & metaTurnMask)
}

// Pieces returns the occupancy of one color.
func (s SlotView) Pieces(c Color) Bitboard {
	if c == White {
		return s.White
	}
	return s.Black
}

// CastlingRights returns the four castling bits recorded at construction.
func (s SlotView) CastlingRights() int {
	return int((s.Metadata & metaCastlingMask) >> MetaCastling)
}

// EnPassant returns the recorded en-passant target, NoSquare if none.
func (s SlotView) EnPassant() Square {
	return Square((s.Metadata & metaEnPassantMask) >> MetaEnPassant)
}

// PieceAt decodes the piece on sq.
func (s SlotView) PieceAt(sq Square) Piece {
	bb := sq.Bitboard()
	var pc Piece
	switch {
	case s.White&bb != 0:
		pc.Color = White
	case s.Black&bb != 0:
		pc.Color = Black
	default:
		return NoPiece
	}
	switch {
	case s.Pawns&bb != 0:
		pc.Type = Pawn
	case s.Leapers&bb != 0:
		pc.Type = Knight
	case s.Kings&bb != 0:
		pc.Type = King
	case s.Sliders&bb != 0:
		diag, ortho := s.Diagonal&bb != 0, s.Orthogonal&bb != 0
		switch {
		case diag && ortho:
			pc.Type = Queen
		case diag:
			pc.Type = Bishop
		case ortho:
			pc.Type = Rook
		}
	}
	return pc
}

// Validate reports the first broken plane invariant.
func (s SlotView) Validate() error {
	classes := []Bitboard{s.Pawns, s.Leapers, s.Sliders, s.Kings}
	for i := range classes {
		for j := i + 1; j < len(classes); j++ {
			if overlap := classes[i] & classes[j]; overlap != 0 {
				return fmt.Errorf("piece classes %d and %d overlap on %s", i, j, overlap.LSB())
			}
		}
	}
	if overlap := s.White & s.Black; overlap != 0 {
		return fmt.Errorf("both colors on %s", overlap.LSB())
	}
	if occ, colored := s.Occupied(), s.White|s.Black; occ != colored {
		return fmt.Errorf("occupancy mismatch on %s", (occ ^ colored).LSB())
	}
	if stray := (s.Diagonal | s.Orthogonal) &^ s.Sliders; stray != 0 {
		return fmt.Errorf("mover trait without slider on %s", stray.LSB())
	}
	return nil
}

// String returns a diagram of the slot.
func (s SlotView) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			pc := s.PieceAt(NewSquare(file, rank))
			if pc == NoPiece {
				sb.WriteString(". ")
				continue
			}
			sb.WriteByte(pc.Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&sb, "%s to move\n", s.SideToMove())
	return sb.String()
}
