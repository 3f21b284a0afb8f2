package engine

import (
	"errors"
	"fmt"

	"github.com/lgbarn/hexchess-go/internal/chess"
	hexerrors "github.com/lgbarn/hexchess-go/internal/errors"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// Reason classifies why a candidate move was rejected.
type Reason int

const (
	// Addressing
	PieceNotPresent Reason = iota
	NotYourPiece
	NullMovement

	// Geometry
	InvalidDirection
	TooFarAway
	CaptureTooFarAway
	RookLikeMovement
	BishopLikeMovement
	ChangeOfTileColour
	NeitherRookNorBishop

	// Obstruction
	Blocked

	// Capture
	NoPieceToCapture

	// King safety
	KingIsUnprotected
)

var reasonNames = []string{
	"PieceNotPresent", "NotYourPiece", "NullMovement",
	"InvalidDirection", "TooFarAway", "CaptureTooFarAway", "RookLikeMovement",
	"BishopLikeMovement", "ChangeOfTileColour", "NeitherRookNorBishop",
	"Blocked", "NoPieceToCapture", "KingIsUnprotected",
}

// String returns the name of the reason.
func (r Reason) String() string {
	if r >= 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "Unknown"
}

// MoveError is a typed rejection of a candidate move. Only the fields that
// belong to its Reason are set. It unwraps to errors.ErrIllegalMove.
type MoveError struct {
	Reason Reason
	Piece  chess.Piece // the piece asked to move

	// Position is the origin for addressing errors, the obstructing tile
	// for Blocked and the target for NoPieceToCapture.
	Position hex.Position
	// Colour is the owner of the piece at Position.
	Colour  chess.Colour
	Blocker chess.Piece

	Stride      hex.Delta
	Delta       hex.Delta
	Distance    int
	MaxDistance int

	FromTileColour, ToTileColour int

	// CapturingMove is the opponent's reply that takes the king.
	CapturingMove chess.Move

	// Both halves of a rejected queen move.
	RookErr, BishopErr *MoveError
}

// Error returns a description of the rejection.
func (e *MoveError) Error() string {
	switch e.Reason {
	case PieceNotPresent:
		return fmt.Sprintf("no piece to move at %v", e.Position)
	case NotYourPiece:
		return fmt.Sprintf("the piece at %v is %s, not yours to move", e.Position, e.Colour)
	case NullMovement:
		return "origin and destination are the same tile"
	case InvalidDirection:
		return fmt.Sprintf("%s cannot move with stride %v", pieceName(e.Piece), e.Stride)
	case TooFarAway:
		if e.MaxDistance > 0 {
			return fmt.Sprintf("destination is %d tiles away, %s may move %d", e.Distance, pieceName(e.Piece), e.MaxDistance)
		}
		return fmt.Sprintf("destination is %d tiles away", e.Distance)
	case CaptureTooFarAway:
		return fmt.Sprintf("capture target is %d tiles away, pawns only capture neighbours", e.Distance)
	case RookLikeMovement:
		return fmt.Sprintf("knight movement %v is rook-like", e.Delta)
	case BishopLikeMovement:
		return fmt.Sprintf("knight movement %v is bishop-like", e.Delta)
	case ChangeOfTileColour:
		return fmt.Sprintf("bishops keep their tile colour (tried %d to %d)", e.FromTileColour, e.ToTileColour)
	case NeitherRookNorBishop:
		return fmt.Sprintf("neither rook-like (%v) nor bishop-like (%v)", e.RookErr, e.BishopErr)
	case Blocked:
		return fmt.Sprintf("blocked by %s %s at %v", e.Colour, e.Blocker, e.Position)
	case NoPieceToCapture:
		return fmt.Sprintf("no piece to capture at %v", e.Position)
	case KingIsUnprotected:
		return fmt.Sprintf("move leaves the king unprotected (capturable by %s)", e.CapturingMove)
	}
	return "illegal move"
}

// Unwrap lets errors.Is match errors.ErrIllegalMove.
func (e *MoveError) Unwrap() error {
	return hexerrors.ErrIllegalMove
}

// ReasonOf extracts the rejection reason from err.
func ReasonOf(err error) (Reason, bool) {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Reason, true
	}
	return 0, false
}

func pieceName(p chess.Piece) string {
	if p == chess.Empty {
		return "piece"
	}
	return p.String()
}
