// Package engine implements hexagonal chess movement rules, the legality
// filter that rejects moves leaving the king capturable, and legal move
// enumeration.
//
// Every query comes in two forms. MoveNoChecks applies piece geometry and
// obstruction only. GetMove additionally simulates the move on a copy of
// the board and rejects it if the mover's king could then be captured.
// The simulation asks InCheck, which must only use MoveNoChecks, otherwise
// legality checking would recurse without end.
package engine

import (
	"fmt"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/errors"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// MoveNoChecks returns the move from origin to dest by the piece of colour
// standing on origin, ignoring king safety.
func MoveNoChecks(board *chess.Board, origin, dest hex.Position, colour chess.Colour) (chess.Move, error) {
	piece, owner, ok := board.GetEither(origin)
	if !ok {
		return chess.Move{}, &MoveError{Reason: PieceNotPresent, Position: origin}
	}
	if owner != colour {
		return chess.Move{}, &MoveError{Reason: NotYourPiece, Piece: piece, Position: origin, Colour: owner}
	}
	if origin == dest {
		return chess.Move{}, &MoveError{Reason: NullMovement, Piece: piece, Position: origin}
	}

	m, err := pieceMove(piece, board, origin, dest, colour)
	if err != nil {
		err.Piece = piece
		return chess.Move{}, err
	}
	return m, nil
}

// pieceMove dispatches to the movement rule of the piece kind.
func pieceMove(piece chess.Piece, board *chess.Board, origin, dest hex.Position, colour chess.Colour) (chess.Move, *MoveError) {
	switch piece {
	case chess.Pawn:
		return pawnMove(board, origin, dest, colour)
	case chess.Knight:
		return knightMove(board, origin, dest, colour)
	case chess.Bishop:
		return bishopMove(board, origin, dest, colour)
	case chess.Rook:
		return rookMove(board, origin, dest, colour)
	case chess.Queen:
		return queenMove(board, origin, dest, colour)
	case chess.King:
		return kingMove(board, origin, dest, colour)
	}
	panic(fmt.Sprintf("engine: unknown piece %d at %v", piece, origin))
}

// GetMove returns the legal move from origin to dest for colour.
// The board is not modified.
func GetMove(board *chess.Board, origin, dest hex.Position, colour chess.Colour) (chess.Move, chess.MoveMeta, error) {
	m, err := MoveNoChecks(board, origin, dest, colour)
	if err != nil {
		return chess.Move{}, chess.MoveMeta{}, err
	}

	if board.Get(m.To, colour) != chess.Empty {
		panic(fmt.Sprintf("engine: %s move %s lands on its own piece\n%s", colour, m, board))
	}
	if board.Get(m.To, colour.Opposite()) == chess.King {
		panic(fmt.Sprintf("engine: %s move %s captures the king\n%s", colour, m, board))
	}

	sim := board.Copy()
	sim.ApplyMoveUnchecked(m, colour)
	if reply, ok := InCheck(sim, colour); ok {
		piece, _, _ := board.GetEither(origin)
		return chess.Move{}, chess.MoveMeta{}, &MoveError{Reason: KingIsUnprotected, Piece: piece, CapturingMove: reply}
	}

	piece, _, _ := board.GetEither(origin)
	return m, chess.MoveMeta{Colour: colour, Piece: piece}, nil
}

// InCheck returns an opponent move capturing colour's king, if one exists.
func InCheck(board *chess.Board, colour chess.Colour) (chess.Move, bool) {
	king := board.FindKing(colour)
	opp := colour.Opposite()
	for origin := range board.PiecePositions(opp) {
		if m, err := MoveNoChecks(board, origin, king, opp); err == nil {
			return m, true
		}
	}
	return chess.Move{}, false
}

// CheckMove verifies that m is legal for colour.
func CheckMove(board *chess.Board, m chess.Move, colour chess.Colour) error {
	from, to, err := m.Endpoints()
	if err != nil {
		return err
	}
	_, _, err = GetMove(board, from, to, colour)
	return err
}

// ApplyMove plays m for colour if it is legal and returns the captured
// piece. The move actually applied is the one derived from m's endpoints,
// so a wrong Captures flag on m cannot corrupt the board.
func ApplyMove(board *chess.Board, m chess.Move, colour chess.Colour) (chess.Piece, error) {
	from, to, err := m.Endpoints()
	if err != nil {
		return chess.Empty, err
	}
	return TryMove(board, from, to, colour)
}

// TryMove plays the move from origin to dest if it is legal.
func TryMove(board *chess.Board, origin, dest hex.Position, colour chess.Colour) (chess.Piece, error) {
	m, meta, err := GetMove(board, origin, dest, colour)
	if err != nil {
		return chess.Empty, errors.Wrapf(err, "%s %v to %v", colour, origin, dest)
	}
	return board.ApplyMoveUnchecked(m, meta.Colour), nil
}
