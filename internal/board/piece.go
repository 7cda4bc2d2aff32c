package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType is the conventional chess piece a square holds. The planes only
// store classes (pawn, leaper, slider, king) and traits; PieceType is what
// those decode to.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Char returns the layout character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	return " pnbrqk"[pt]
}

// Piece is a PieceType together with its Color.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the zero Piece, returned for empty squares.
var NoPiece = Piece{}

// Char returns the layout character: uppercase for White, lowercase for Black.
func (p Piece) Char() byte {
	c := p.Type.Char()
	if p.Color == White && p.Type != NoPieceType {
		c -= 'a' - 'A'
	}
	return c
}

// pieceFromChar decodes a layout character; ok is false for anything that
// is not one of PNBRQK/pnbrqk.
func pieceFromChar(c byte) (p Piece, ok bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Piece{Pawn, color}, true
	case 'N':
		return Piece{Knight, color}, true
	case 'B':
		return Piece{Bishop, color}, true
	case 'R':
		return Piece{Rook, color}, true
	case 'Q':
		return Piece{Queen, color}, true
	case 'K':
		return Piece{King, color}, true
	}
	return NoPiece, false
}
