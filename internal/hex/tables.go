package hex

import "golang.org/x/exp/constraints"

var (
	indexOf    [Max + 1][Max + 1]int8
	positionAt [NumTiles]Position
	rankStart  [NumRanks]int
)

func init() {
	initIndexTables()
}

// initIndexTables lays the tiles out rank by rank using the rank width and
// minimum coordinate closed forms.
func initIndexTables() {
	for x := range indexOf {
		for y := range indexOf[x] {
			indexOf[x][y] = -1
		}
	}

	idx := 0
	for rank := 0; rank <= MaxRank; rank++ {
		rankStart[rank] = idx
		lo := MinValidCoordinateForRank(rank)
		for y := lo; y < lo+RankWidth(rank); y++ {
			x := rank - y
			indexOf[x][y] = int8(idx)
			positionAt[idx] = Position{int8(x), int8(y)}
			idx++
		}
	}
	if idx != NumTiles {
		panic("hex: rank widths do not cover the board")
	}
}

// RankStart returns the index of the first tile on a rank.
func RankStart(rank int) int {
	return rankStart[rank]
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
