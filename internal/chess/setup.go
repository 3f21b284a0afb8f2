package chess

import "github.com/lgbarn/hexchess-go/internal/hex"

// White's starting tiles per piece kind. Black's are the flipped tiles.
var initialWhite = []struct {
	piece Piece
	tiles [][2]int
}{
	{Pawn, [][2]int{{4, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4}, {3, 4}, {2, 4}, {1, 4}, {0, 4}}},
	{Knight, [][2]int{{0, 2}, {2, 0}}},
	{Bishop, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
	{Rook, [][2]int{{0, 3}, {3, 0}}},
	{Queen, [][2]int{{1, 0}}},
	{King, [][2]int{{0, 1}}},
}

// InitialPlacements returns every piece of the starting position, White
// first, in the order pawns, knights, bishops, rooks, queen, king.
func InitialPlacements() []Placement {
	var white, black []Placement
	for _, group := range initialWhite {
		for _, t := range group.tiles {
			p := hex.MustNew(t[0], t[1])
			white = append(white, Placement{Position: p, Piece: group.piece, Colour: White})
			black = append(black, Placement{Position: p.Flipped(), Piece: group.piece, Colour: Black})
		}
	}
	return append(white, black...)
}

// IsPawnHomeTile reports whether p is one of the starting pawn tiles of
// the given colour, from which a pawn may advance two tiles.
func IsPawnHomeTile(p hex.Position, c Colour) bool {
	x, y := p.X(), p.Y()
	if c == White {
		return (x == 4 && y <= 4) || (x <= 4 && y == 4)
	}
	return (x == 6 && y >= 6) || (x >= 6 && y == 6)
}

// PawnHomeTileOfFile returns the starting pawn tile on a file.
// Files 0 and 10 have none.
func PawnHomeTileOfFile(file int, c Colour) (hex.Position, bool) {
	m := 4
	if c == Black {
		m = 6
	}
	// The tile lies on file = 5+y-x with x == m or y == m.
	for _, xy := range [...][2]int{{m, file + m - hex.Width}, {m + hex.Width - file, m}} {
		if !hex.IsValid(xy[0], xy[1]) {
			continue
		}
		p := hex.MustNew(xy[0], xy[1])
		if IsPawnHomeTile(p, c) {
			return p, true
		}
	}
	return hex.Position{}, false
}
