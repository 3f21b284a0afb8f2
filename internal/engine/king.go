package engine

import (
	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// kingMove takes a single rook or bishop stride.
func kingMove(board *chess.Board, origin, dest hex.Position, colour chess.Colour) (chess.Move, *MoveError) {
	stride, distance := dest.Sub(origin).Stride()
	if distance > 1 {
		return chess.Move{}, &MoveError{Reason: TooFarAway, Stride: stride, Distance: distance, MaxDistance: 1}
	}
	if !isRookStride(stride) && !isBishopStride(stride) {
		return chess.Move{}, &MoveError{Reason: InvalidDirection, Stride: stride}
	}
	if err := checkColourBlocker(board, dest, colour); err != nil {
		return chess.Move{}, err
	}
	return regularMove(board, origin, dest, colour), nil
}
