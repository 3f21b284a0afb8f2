package chess

import (
	"fmt"
	"iter"

	"github.com/lgbarn/hexchess-go/internal/errors"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// Board holds one 91-slot table per colour, indexed by hex.Position.Index,
// and the last move applied.
//
// Exactly one king per colour and no tile holding pieces of both colours
// are standing invariants. The board trusts its caller on moves; setup
// helpers refuse to break the invariants.
type Board struct {
	pieces   [NumColours][hex.NumTiles]Piece
	lastMove Move
	hasLast  bool
}

// Placement is a piece on a tile.
type Placement struct {
	Position hex.Position
	Piece    Piece
	Colour   Colour
}

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard() *Board {
	b := &Board{}
	for _, pl := range InitialPlacements() {
		b.pieces[pl.Colour][pl.Position.Index()] = pl.Piece
	}
	return b
}

// NewMinimalBoard creates a board holding only the two kings.
func NewMinimalBoard(whiteKing, blackKing hex.Position) (*Board, error) {
	if whiteKing == blackKing {
		return nil, &errors.PositionError{
			Err: errors.ErrInvalidSetup, Op: "place kings", X: whiteKing.X(), Y: whiteKing.Y(),
		}
	}
	b := &Board{}
	b.pieces[White][whiteKing.Index()] = King
	b.pieces[Black][blackKing.Index()] = King
	return b, nil
}

// Get returns the piece of the given colour at p, or Empty.
func (b *Board) Get(p hex.Position, c Colour) Piece {
	return b.pieces[c][p.Index()]
}

// GetEither returns the piece at p and its colour, if any.
func (b *Board) GetEither(p hex.Position) (Piece, Colour, bool) {
	i := p.Index()
	if piece := b.pieces[White][i]; piece != Empty {
		return piece, White, true
	}
	if piece := b.pieces[Black][i]; piece != Empty {
		return piece, Black, true
	}
	return Empty, White, false
}

// IsEmpty reports whether no piece stands on p.
func (b *Board) IsEmpty(p hex.Position) bool {
	i := p.Index()
	return b.pieces[White][i] == Empty && b.pieces[Black][i] == Empty
}

// Pieces yields the pieces of one colour in storage order.
func (b *Board) Pieces(c Colour) iter.Seq[Piece] {
	return func(yield func(Piece) bool) {
		for _, piece := range b.pieces[c] {
			if piece == Empty {
				continue
			}
			if !yield(piece) {
				return
			}
		}
	}
}

// PiecePositions yields the pieces of one colour with their tiles,
// in storage order.
func (b *Board) PiecePositions(c Colour) iter.Seq2[hex.Position, Piece] {
	return func(yield func(hex.Position, Piece) bool) {
		for i, piece := range b.pieces[c] {
			if piece == Empty {
				continue
			}
			p, _ := hex.FromIndex(i)
			if !yield(p, piece) {
				return
			}
		}
	}
}

// AllPiecePositions yields every piece on the board, White first.
func (b *Board) AllPiecePositions() iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		for _, c := range [...]Colour{White, Black} {
			for p, piece := range b.PiecePositions(c) {
				if !yield(Placement{Position: p, Piece: piece, Colour: c}) {
					return
				}
			}
		}
	}
}

// Place puts a non-king piece on an empty tile.
func (b *Board) Place(p hex.Position, c Colour, piece Piece) error {
	switch {
	case piece <= Empty || piece >= NumPieceValues:
		return b.setupError("place", p, c, fmt.Errorf("%w: unknown piece %d", errors.ErrInvalidSetup, piece))
	case piece == King:
		return b.setupError("place", p, c, fmt.Errorf("%w: boards hold exactly one king per colour", errors.ErrInvalidSetup))
	case !b.IsEmpty(p):
		return b.setupError("place", p, c, fmt.Errorf("%w: tile occupied", errors.ErrInvalidSetup))
	}
	b.pieces[c][p.Index()] = piece
	return nil
}

// Remove takes a non-king piece off the board and returns it.
func (b *Board) Remove(p hex.Position) (Piece, error) {
	piece, c, ok := b.GetEither(p)
	if !ok {
		// No colour: the tile holds no piece.
		return Empty, &errors.PositionError{
			Err: fmt.Errorf("%w: tile empty", errors.ErrInvalidSetup),
			Op:  "remove",
			X:   p.X(),
			Y:   p.Y(),
		}
	}
	if piece == King {
		return Empty, b.setupError("remove", p, c, fmt.Errorf("%w: boards hold exactly one king per colour", errors.ErrInvalidSetup))
	}
	b.pieces[c][p.Index()] = Empty
	return piece, nil
}

func (b *Board) setupError(op string, p hex.Position, c Colour, err error) error {
	return &errors.PositionError{Err: err, Op: op, X: p.X(), Y: p.Y(), Colour: c.String()}
}

// ApplyMoveUnchecked plays a move without any legality check and returns
// the captured piece, or Empty.
//
// Only moves produced by the legality filter are safe here. Capturing an
// empty tile and non-regular moves are engine faults and panic.
func (b *Board) ApplyMoveUnchecked(m Move, c Colour) Piece {
	if m.Class != RegularMove {
		panic(fmt.Sprintf("chess: cannot apply %s move", m.Class))
	}

	from, to := m.From.Index(), m.To.Index()
	captured := Empty
	if m.Captures {
		opp := c.Opposite()
		captured = b.pieces[opp][to]
		if captured == Empty {
			panic(fmt.Sprintf("chess: move %s captures an empty tile", m))
		}
		b.pieces[opp][to] = Empty
	}
	b.pieces[c][from], b.pieces[c][to] = b.pieces[c][to], b.pieces[c][from]

	b.lastMove = m
	b.hasLast = true
	return captured
}

// LastMove returns the most recently applied move.
func (b *Board) LastMove() (Move, bool) {
	return b.lastMove, b.hasLast
}

// FindKing returns the tile of the king of the given colour.
// A board without that king violates the board invariant and panics.
func (b *Board) FindKing(c Colour) hex.Position {
	for i, piece := range b.pieces[c] {
		if piece == King {
			p, _ := hex.FromIndex(i)
			return p
		}
	}
	panic(fmt.Sprintf("chess: no %s king on the board", c))
}

// MaterialValue sums the values of the pieces of one colour.
func (b *Board) MaterialValue(c Colour) int {
	total := 0
	for piece := range b.Pieces(c) {
		v, _ := piece.Value()
		total += v
	}
	return total
}

// Count returns how many pieces of a kind one colour has.
func (b *Board) Count(c Colour, piece Piece) int {
	n := 0
	for _, pc := range b.pieces[c] {
		if pc == piece {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether two boards hold identical tables and last move.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}

// BoardState captures all mutable board state for save/restore operations.
// This is cheaper than Copy() when a caller temporarily modifies the board
// and then puts it back (e.g., exploring a move tree).
type BoardState struct {
	Pieces   [NumColours][hex.NumTiles]Piece
	LastMove Move
	HasLast  bool
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Pieces:   b.pieces,
		LastMove: b.lastMove,
		HasLast:  b.hasLast,
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.pieces = s.Pieces
	b.lastMove = s.LastMove
	b.hasLast = s.HasLast
}
