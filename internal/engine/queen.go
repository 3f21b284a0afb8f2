package engine

import (
	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// queenMove moves like a rook or, failing that, like a bishop.
func queenMove(board *chess.Board, origin, dest hex.Position, colour chess.Colour) (chess.Move, *MoveError) {
	m, rookErr := rookMove(board, origin, dest, colour)
	if rookErr == nil {
		return m, nil
	}
	m, bishopErr := bishopMove(board, origin, dest, colour)
	if bishopErr == nil {
		return m, nil
	}
	rookErr.Piece = chess.Rook
	bishopErr.Piece = chess.Bishop
	return chess.Move{}, &MoveError{Reason: NeitherRookNorBishop, RookErr: rookErr, BishopErr: bishopErr}
}
