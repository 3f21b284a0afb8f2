package engine

import (
	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// checkBlockers fails on the first occupied tile strictly between origin
// and origin+stride*distance. The board is convex, so every step is a tile.
func checkBlockers(board *chess.Board, origin hex.Position, stride hex.Delta, distance int) *MoveError {
	for i := 1; i < distance; i++ {
		p, _ := origin.Add(stride.Scale(i))
		if err := checkAnyBlocker(board, p); err != nil {
			return err
		}
	}
	return nil
}

// checkAnyBlocker fails if any piece stands on p.
func checkAnyBlocker(board *chess.Board, p hex.Position) *MoveError {
	if piece, c, ok := board.GetEither(p); ok {
		return &MoveError{Reason: Blocked, Position: p, Blocker: piece, Colour: c}
	}
	return nil
}

// checkColourBlocker fails if a piece of the mover's colour stands on p.
func checkColourBlocker(board *chess.Board, p hex.Position, colour chess.Colour) *MoveError {
	if piece := board.Get(p, colour); piece != chess.Empty {
		return &MoveError{Reason: Blocked, Position: p, Blocker: piece, Colour: colour}
	}
	return nil
}

// regularMove builds the move, capturing whatever opponent piece is at dest.
func regularMove(board *chess.Board, origin, dest hex.Position, colour chess.Colour) chess.Move {
	captures := board.Get(dest, colour.Opposite()) != chess.Empty
	return chess.NewRegularMove(origin, dest, captures)
}
