package chess

import (
	"fmt"

	"github.com/lgbarn/hexchess-go/internal/errors"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// MoveClass categorizes the move vocabulary.
type MoveClass int

const (
	RegularMove MoveClass = iota
	EnPassantMove
	PromotionMove
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case RegularMove:
		return "Regular"
	case EnPassantMove:
		return "EnPassant"
	case PromotionMove:
		return "Promotion"
	}
	return "Unknown"
}

// Move is a pure value describing one ply. Only RegularMove is produced
// by the legality filter; the other classes are vocabulary only.
type Move struct {
	Class MoveClass

	// Regular moves.
	From, To hex.Position

	// Whether the move captures a piece. For a promotion it tells whether
	// Towards is meaningful.
	Captures bool

	// En passant and promotion moves.
	File      int
	Towards   Side
	PromoteTo Piece
}

// NewRegularMove creates a move from one tile to another.
func NewRegularMove(from, to hex.Position, captures bool) Move {
	return Move{Class: RegularMove, From: from, To: to, Captures: captures}
}

// NewEnPassantMove creates an en passant capture by the pawn of a file.
func NewEnPassantMove(file int, towards Side) Move {
	return Move{Class: EnPassantMove, File: file, Towards: towards, Captures: true}
}

// NewPromotionMove creates a promotion of the pawn on a file. When captures
// is set the pawn captures towards the given side.
func NewPromotionMove(file int, captures bool, towards Side, promoteTo Piece) Move {
	return Move{Class: PromotionMove, File: file, Captures: captures, Towards: towards, PromoteTo: promoteTo}
}

// Endpoints returns the origin and destination of a regular move.
// The geometry of the other classes is not defined.
func (m Move) Endpoints() (from, to hex.Position, err error) {
	if m.Class != RegularMove {
		return hex.Position{}, hex.Position{}, errors.Wrapf(errors.ErrUnsupportedMove, "%s move has no endpoints", m.Class)
	}
	return m.From, m.To, nil
}

// String returns a compact text form: "(4,4)-(4,6)", "(4,4)x(5,5)",
// "ep 3 QueenSide" or "=Q 3".
func (m Move) String() string {
	switch m.Class {
	case RegularMove:
		sep := "-"
		if m.Captures {
			sep = "x"
		}
		return m.From.String() + sep + m.To.String()
	case EnPassantMove:
		return fmt.Sprintf("ep %d %s", m.File, m.Towards)
	case PromotionMove:
		if m.Captures {
			return fmt.Sprintf("=%c %d x%s", m.PromoteTo.Letter(), m.File, m.Towards)
		}
		return fmt.Sprintf("=%c %d", m.PromoteTo.Letter(), m.File)
	}
	return "?"
}

// MoveMeta carries facts about a move found by the legality filter.
type MoveMeta struct {
	Colour Colour
	Piece  Piece
}
