package engine

import (
	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// knightReach is the largest hex distance a knight jumps.
const knightReach = 3

// checkKnightDelta accepts the nearest tiles that are neither on a
// straight axis nor on a diagonal.
func checkKnightDelta(d hex.Delta) *MoveError {
	if dist := d.Distance(); dist > knightReach {
		return &MoveError{Reason: TooFarAway, Delta: d, Distance: dist, MaxDistance: knightReach}
	}
	if isRookDelta(d) {
		return &MoveError{Reason: RookLikeMovement, Delta: d}
	}
	// Within reach, every colour-keeping delta is a diagonal one.
	if (d.X+d.Y)%3 == 0 {
		return &MoveError{Reason: BishopLikeMovement, Delta: d}
	}
	return nil
}

// knightMove jumps; nothing in between matters.
func knightMove(board *chess.Board, origin, dest hex.Position, colour chess.Colour) (chess.Move, *MoveError) {
	if err := checkKnightDelta(dest.Sub(origin)); err != nil {
		return chess.Move{}, err
	}
	if err := checkColourBlocker(board, dest, colour); err != nil {
		return chess.Move{}, err
	}
	return regularMove(board, origin, dest, colour), nil
}
