package engine

import (
	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// RookStrides are the steps along the three straight axes.
var RookStrides = [6]hex.Delta{
	{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
	{X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 0},
}

// isRookStride reports whether s is a step along a straight axis.
func isRookStride(s hex.Delta) bool {
	return (s.X == 0 && abs(s.Y) == 1) ||
		(abs(s.X) == 1 && s.Y == 0) ||
		(abs(s.X) == 1 && s.X == s.Y)
}

// isRookDelta reports whether d lies on a straight axis.
func isRookDelta(d hex.Delta) bool {
	return d.X == 0 || d.Y == 0 || d.X == d.Y
}

// rookMove slides along a straight axis over empty tiles.
func rookMove(board *chess.Board, origin, dest hex.Position, colour chess.Colour) (chess.Move, *MoveError) {
	stride, distance := dest.Sub(origin).Stride()
	if !isRookStride(stride) {
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
