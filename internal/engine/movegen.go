package engine

import (
	"iter"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// LegalMoves yields every legal move for colour: each origin holding one
// of its pieces, in storage order, paired with every tile. The board must
// not be modified while the sequence is consumed.
func LegalMoves(board *chess.Board, colour chess.Colour) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		for origin := range board.PiecePositions(colour) {
			for m := range LegalMovesFrom(board, origin, colour) {
				if !yield(m) {
					return
				}
			}
		}
	}
}

// LegalMovesFrom yields the legal moves of the piece on origin.
func LegalMovesFrom(board *chess.Board, origin hex.Position, colour chess.Colour) iter.Seq[chess.Move] {
	return func(yield func(chess.Move) bool) {
		if board.Get(origin, colour) == chess.Empty {
			return
		}
		for dest := range hex.Positions() {
			m, _, err := GetMove(board, origin, dest, colour)
			if err != nil {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for range LegalMoves(board, colour) {
		return true
	}
	return false
}

// CountLegalMoves returns the number of legal moves for colour.
func CountLegalMoves(board *chess.Board, colour chess.Colour) int {
	n := 0
	for range LegalMoves(board, colour) {
		n++
	}
	return n
}
