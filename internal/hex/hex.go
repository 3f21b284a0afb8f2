// Package hex implements the coordinate system of the 91-tile hexagonal board.
//
// A tile is addressed by two axial coordinates (x, y), each in [0, 10], with
// |x-y| <= 5. The board is a hexagon of side 6 whose long diagonal runs from
// (0,0) to (10,10). White starts near (0,0) and Black near (10,10).
package hex

import (
	"fmt"
	"iter"

	"github.com/lgbarn/hexchess-go/internal/errors"
)

// Board dimensions.
const (
	Max      = 10 // largest coordinate value
	Width    = 5  // largest allowed |x-y|
	MaxRank  = 2 * Max
	MaxFile  = 2 * Width
	NumRanks = MaxRank + 1
	NumFiles = MaxFile + 1
	NumTiles = 91
)

// Position is a valid tile of the board. The zero value is (0,0).
type Position struct {
	x, y int8
}

// IsValid reports whether (x, y) addresses one of the 91 tiles.
func IsValid(x, y int) bool {
	return x >= 0 && x <= Max && y >= 0 && y <= Max && abs(x-y) <= Width
}

// New returns the tile at (x, y).
func New(x, y int) (Position, error) {
	if !IsValid(x, y) {
		return Position{}, &errors.PositionError{Err: errors.ErrInvalidPosition, X: x, Y: y}
	}
	return Position{int8(x), int8(y)}, nil
}

// MustNew is like New but panics on an invalid coordinate pair.
// It is intended for tables and tests.
func MustNew(x, y int) Position {
	p, err := New(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// Positions yields every tile exactly once, x-major then y.
// The sequence is finite and may be ranged over repeatedly.
func Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for x := 0; x <= Max; x++ {
			for y := 0; y <= Max; y++ {
				if !IsValid(x, y) {
					continue
				}
				if !yield(Position{int8(x), int8(y)}) {
					return
				}
			}
		}
	}
}

// X returns the first coordinate.
func (p Position) X() int { return int(p.x) }

// Y returns the second coordinate.
func (p Position) Y() int { return int(p.y) }

// Rank is x+y, from 0 at White's corner to 20 at Black's.
func (p Position) Rank() int { return int(p.x) + int(p.y) }

// File is Width+y-x, from 0 to 10.
func (p Position) File() int { return Width + int(p.y) - int(p.x) }

// TileColour is (x+y) mod 3. Bishops never leave their tile colour.
func (p Position) TileColour() int { return p.Rank() % 3 }

// Flipped returns the tile mirrored through the board centre (5,5).
func (p Position) Flipped() Position {
	return Position{Max - p.x, Max - p.y}
}

// Sub returns the delta leading from other to p.
func (p Position) Sub(other Position) Delta {
	return Delta{X: int(p.x) - int(other.x), Y: int(p.y) - int(other.y)}
}

// Add returns p shifted by d, and false if the result leaves the board.
func (p Position) Add(d Delta) (Position, bool) {
	x, y := int(p.x)+d.X, int(p.y)+d.Y
	if !IsValid(x, y) {
		return Position{}, false
	}
	return Position{int8(x), int8(y)}, true
}

// Index returns the dense index of p in [0, NumTiles), ordered by rank and
// then by y within the rank.
func (p Position) Index() int {
	return int(indexOf[p.x][p.y])
}

// FromIndex is the inverse of Position.Index.
func FromIndex(i int) (Position, bool) {
	if i < 0 || i >= NumTiles {
		return Position{}, false
	}
	return positionAt[i], true
}

// Equal reports whether p and q are the same tile.
func (p Position) Equal(q Position) bool {
	return p == q
}

// String returns the tile as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.x, p.y)
}

// Distance returns the hex distance between two tiles.
func Distance(a, b Position) int {
	return b.Sub(a).Distance()
}

// RankWidth returns the number of tiles on a rank.
func RankWidth(rank int) int {
	return min(min(rank, MaxRank-rank)/2, 2)*2 + 1 + rank%2
}

// MinValidCoordinateForRank returns the smallest y of any tile on a rank.
func MinValidCoordinateForRank(rank int) int {
	return max(rank-Max, (rank-Width+1)/2, 0)
}
