package engine

import (
	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// BishopStrides are the steps along the hexagon diagonals. Each keeps
// the tile colour.
var BishopStrides = [6]hex.Delta{
	{X: 1, Y: -1}, {X: 2, Y: 1}, {X: 1, Y: 2},
	{X: -1, Y: 1}, {X: -2, Y: -1}, {X: -1, Y: -2},
}

// isBishopStride reports whether s is a step along a diagonal.
func isBishopStride(s hex.Delta) bool {
	ax, ay := abs(s.X), abs(s.Y)
	return (ax == 1 || ax == 2) && (ay == 1 || ay == 2) && (s.X+s.Y)%3 == 0
}

// bishopMove slides along a diagonal over empty tiles.
func bishopMove(board *chess.Board, origin, dest hex.Position, colour chess.Colour) (chess.Move, *MoveError) {
	if from, to := origin.TileColour(), dest.TileColour(); from != to {
		return chess.Move{}, &MoveError{Reason: ChangeOfTileColour, FromTileColour: from, ToTileColour: to}
	}
	stride, distance := dest.Sub(origin).Stride()
	if !isBishopStride(stride) {
		return chess.Move{}, &MoveError{Reason: InvalidDirection, Stride: stride}
	}
	if err := checkBlockers(board, origin, stride, distance); err != nil {
		return chess.Move{}, err
	}
	if err := checkColourBlocker(board, dest, colour); err != nil {
		return chess.Move{}, err
	}
	return regularMove(board, origin, dest, colour), nil
}
