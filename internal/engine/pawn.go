package engine

import (
	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// isPawnAdvanceStride reports whether s points straight ahead for colour.
func isPawnAdvanceStride(s hex.Delta, colour chess.Colour) bool {
	dir := chess.ColourOffset(colour)
	return s.X == dir && s.Y == dir
}

// isPawnCaptureStride reports whether s is one of the two forward
// single-axis steps a pawn captures along.
func isPawnCaptureStride(s hex.Delta, colour chess.Colour) bool {
	dir := chess.ColourOffset(colour)
	return (s.X == 0 && s.Y == dir) || (s.X == dir && s.Y == 0)
}

// pawnMove advances onto empty tiles or captures a neighbour.
func pawnMove(board *chess.Board, origin, dest hex.Position, colour chess.Colour) (chess.Move, *MoveError) {
	delta := dest.Sub(origin)
	stride, distance := delta.Stride()

	switch {
	case isPawnAdvanceStride(stride, colour):
		maxDistance := 1
		if chess.IsPawnHomeTile(origin, colour) {
			maxDistance = 2
		}
		if distance > maxDistance {
			return chess.Move{}, &MoveError{Reason: TooFarAway, Distance: distance, MaxDistance: maxDistance}
		}
		if err := checkBlockers(board, origin, stride, distance); err != nil {
			return chess.Move{}, err
		}
		if err := checkAnyBlocker(board, dest); err != nil {
			return chess.Move{}, err
		}
		return chess.NewRegularMove(origin, dest, false), nil

	case isPawnCaptureStride(stride, colour):
		if distance > 1 {
			return chess.Move{}, &MoveError{Reason: CaptureTooFarAway, Distance: distance}
		}
		if board.Get(dest, colour.Opposite()) == chess.Empty {
			return chess.Move{}, &MoveError{Reason: NoPieceToCapture, Position: dest}
		}
		return chess.NewRegularMove(origin, dest, true), nil
	}

	return chess.Move{}, &MoveError{Reason: InvalidDirection, Stride: stride, Delta: delta}
}
