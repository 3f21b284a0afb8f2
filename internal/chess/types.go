// Package chess provides the core hexagonal chess types: colours, pieces,
// moves and the two-table board.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of sides.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Piece represents a hexagonal chess piece type.
type Piece int

const (
	Empty Piece = iota // Empty tile
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Value returns the material value of a piece. The king has none and
// reports false.
func (p Piece) Value() (int, bool) {
	switch p {
	case Pawn:
		return 1, true
	case Knight, Bishop:
		return 3, true
	case Rook:
		return 5, true
	case Queen:
		return 9, true
	}
	return 0, false
}

var glyphs = [NumColours][NumPieceValues]rune{
	Black: {' ', '♙', '♘', '♗', '♖', '♕', '♔'},
	White: {' ', '♟', '♞', '♝', '♜', '♛', '♚'},
}

// Glyph returns the chess symbol used to draw a piece of the given colour.
func (p Piece) Glyph(c Colour) rune {
	if p < Empty || p >= NumPieceValues {
		return '?'
	}
	return glyphs[c][p]
}

// Side is the flank a pawn captures towards.
type Side int

const (
	KingSide Side = iota
	QueenSide
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == QueenSide {
		return "QueenSide"
	}
	return "KingSide"
}
