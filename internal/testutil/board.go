package testutil

import (
	"slices"
	"testing"

	"github.com/lgbarn/hexchess-go/internal/chess"
	"github.com/lgbarn/hexchess-go/internal/hex"
)

// P is shorthand for hex.MustNew in test tables.
func P(x, y int) hex.Position {
	return hex.MustNew(x, y)
}

// BoardWith builds a board holding the two kings plus the given pieces.
// Setup errors fail the test immediately.
func BoardWith(t testing.TB, whiteKing, blackKing hex.Position, pieces ...chess.Placement) *chess.Board {
	t.Helper()
	b, err := chess.NewMinimalBoard(whiteKing, blackKing)
	if err != nil {
		t.Fatalf("NewMinimalBoard(%v, %v): %v", whiteKing, blackKing, err)
	}
	for _, pl := range pieces {
		if err := b.Place(pl.Position, pl.Colour, pl.Piece); err != nil {
			t.Fatalf("Place(%v, %s, %s): %v", pl.Position, pl.Colour, pl.Piece, err)
		}
	}
	return b
}

// White returns a white placement.
func White(piece chess.Piece, p hex.Position) chess.Placement {
	return chess.Placement{Position: p, Piece: piece, Colour: chess.White}
}

// Black returns a black placement.
func Black(piece chess.Piece, p hex.Position) chess.Placement {
	return chess.Placement{Position: p, Piece: piece, Colour: chess.Black}
}

// Destinations collects the destination tile indices of moves, sorted.
func Destinations(moves []chess.Move) []int {
	out := make([]int, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To.Index())
	}
	slices.Sort(out)
	return out
}

// Ray collects the tile indices reached by repeatedly stepping stride from
// origin until the board edge or, inclusively, a stop tile.
func Ray(origin hex.Position, stride hex.Delta, stop func(hex.Position) bool) []int {
	var out []int
	p := origin
	for {
		next, ok := p.Add(stride)
		if !ok {
			return out
		}
		out = append(out, next.Index())
		if stop != nil && stop(next) {
			return out
		}
		p = next
	}
}
