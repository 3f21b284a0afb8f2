package hex

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	hexerrors "github.com/lgbarn/hexchess-go/internal/errors"
)

// TestIsValid tests the tile membership predicate on corners and edges.
func TestIsValid(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{10, 10, true},
		{5, 0, true},
		{0, 5, true},
		{6, 0, false},
		{0, 6, false},
		{10, 5, true},
		{5, 10, true},
		{4, 10, false},
		{-1, 0, false},
		{11, 10, false},
		{5, 5, true},
	}

	for _, tt := range tests {
		if got := IsValid(tt.x, tt.y); got != tt.want {
			t.Errorf("IsValid(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// TestNewRejectsInvalid tests that New wraps ErrInvalidPosition.
func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(0, 9)
	if !errors.Is(err, hexerrors.ErrInvalidPosition) {
		t.Errorf("New(0, 9) error = %v, want ErrInvalidPosition", err)
	}

	p, err := New(3, 7)
	if err != nil {
		t.Fatalf("New(3, 7) error = %v", err)
	}
	assertEqual(t, [2]int{p.X(), p.Y()}, [2]int{3, 7})
}

// TestPositionsCount tests that iteration yields 91 distinct valid tiles, twice.
func TestPositionsCount(t *testing.T) {
	for pass := 0; pass < 2; pass++ {
		seen := make(map[Position]bool)
		for p := range Positions() {
			if !IsValid(p.X(), p.Y()) {
				t.Fatalf("Positions() yielded invalid tile %v", p)
			}
			if seen[p] {
				t.Fatalf("Positions() yielded %v twice", p)
			}
			seen[p] = true
		}
		if len(seen) != NumTiles {
			t.Errorf("pass %d: Positions() yielded %d tiles, want %d", pass, len(seen), NumTiles)
		}
	}
}

// TestPositionsEarlyStop tests that iteration stops when the consumer breaks.
func TestPositionsEarlyStop(t *testing.T) {
	n := 0
	for range Positions() {
		n++
		if n == 10 {
			break
		}
	}
	assertEqual(t, n, 10)
}

// TestRankWidth tests the rank width table.
func TestRankWidth(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 5, 6, 5, 6, 5, 6, 5, 6, 5, 6, 5, 4, 3, 2, 1}

	sum := 0
	for rank, w := range want {
		if got := RankWidth(rank); got != w {
			t.Errorf("RankWidth(%d) = %d, want %d", rank, got, w)
		}
		sum += RankWidth(rank)
	}
	assertEqual(t, sum, NumTiles, "sum of rank widths")
}

// TestMinValidCoordinateForRank tests the closed form against a brute-force scan.
func TestMinValidCoordinateForRank(t *testing.T) {
	for rank := 0; rank <= MaxRank; rank++ {
		lo, count := -1, 0
		for y := 0; y <= Max; y++ {
			if IsValid(rank-y, y) {
				if lo < 0 {
					lo = y
				}
				count++
			}
		}
		if got := MinValidCoordinateForRank(rank); got != lo {
			t.Errorf("MinValidCoordinateForRank(%d) = %d, want %d", rank, got, lo)
		}
		if got := RankWidth(rank); got != count {
			t.Errorf("RankWidth(%d) = %d, want %d tiles", rank, got, count)
		}
	}
}

// TestIndexBijection tests that Index and FromIndex are mutual inverses.
func TestIndexBijection(t *testing.T) {
	seen := make([]bool, NumTiles)
	for p := range Positions() {
		i := p.Index()
		if i < 0 || i >= NumTiles {
			t.Fatalf("%v.Index() = %d, out of range", p, i)
		}
		if seen[i] {
			t.Fatalf("index %d assigned twice", i)
		}
		seen[i] = true

		back, ok := FromIndex(i)
		if !ok || back != p {
			t.Errorf("FromIndex(%d) = %v, %v, want %v", i, back, ok, p)
		}
	}

	if _, ok := FromIndex(NumTiles); ok {
		t.Errorf("FromIndex(%d) ok = true, want false", NumTiles)
	}
	if _, ok := FromIndex(-1); ok {
		t.Error("FromIndex(-1) ok = true, want false")
	}
}

// TestIndexRankOrder tests that indices grow with rank and match RankStart.
func TestIndexRankOrder(t *testing.T) {
	assertEqual(t, MustNew(0, 0).Index(), 0)
	assertEqual(t, MustNew(10, 10).Index(), NumTiles-1)
	assertEqual(t, MustNew(1, 0).Index(), 1)
	assertEqual(t, MustNew(0, 1).Index(), 2)

	for i := 1; i < NumTiles; i++ {
		prev, _ := FromIndex(i - 1)
		cur, _ := FromIndex(i)
		if cur.Rank() < prev.Rank() {
			t.Errorf("rank decreases between index %d and %d", i-1, i)
		}
	}
	for rank := 0; rank <= MaxRank; rank++ {
		p, _ := FromIndex(RankStart(rank))
		if p.Rank() != rank || p.Y() != MinValidCoordinateForRank(rank) {
			t.Errorf("RankStart(%d) points at %v", rank, p)
		}
	}
}

// TestRankFileColour tests the derived tile attributes.
func TestRankFileColour(t *testing.T) {
	tests := []struct {
		x, y             int
		rank, file, tile int
	}{
		{0, 0, 0, 5, 0},
		{10, 10, 20, 5, 2},
		{5, 0, 5, 0, 2},
		{0, 5, 5, 10, 2},
		{4, 4, 8, 5, 2},
		{1, 1, 2, 5, 2},
		{2, 2, 4, 5, 1},
		{3, 1, 4, 3, 1},
	}

	for _, tt := range tests {
		p := MustNew(tt.x, tt.y)
		if got := p.Rank(); got != tt.rank {
			t.Errorf("%v.Rank() = %d, want %d", p, got, tt.rank)
		}
		if got := p.File(); got != tt.file {
			t.Errorf("%v.File() = %d, want %d", p, got, tt.file)
		}
		if got := p.TileColour(); got != tt.tile {
			t.Errorf("%v.TileColour() = %d, want %d", p, got, tt.tile)
		}
	}
}

// TestFlipped tests the central mirror.
func TestFlipped(t *testing.T) {
	for p := range Positions() {
		f := p.Flipped()
		if f.Flipped() != p {
			t.Errorf("%v.Flipped().Flipped() = %v", p, f.Flipped())
		}
		if f.Rank() != MaxRank-p.Rank() {
			t.Errorf("%v.Flipped().Rank() = %d, want %d", p, f.Rank(), MaxRank-p.Rank())
		}
		if f.File() != MaxFile-p.File() {
			t.Errorf("%v.Flipped().File() = %d, want %d", p, f.File(), MaxFile-p.File())
		}
	}
	assertEqual(t, MustNew(5, 5).Flipped(), MustNew(5, 5))
}

// TestAddSub tests that Sub and Add are inverse for every tile pair.
func TestAddSub(t *testing.T) {
	for a := range Positions() {
		for b := range Positions() {
			d := b.Sub(a)
			if !IsValidDelta(d.X, d.Y) {
				t.Fatalf("%v - %v = %v, not a valid delta", b, a, d)
			}
			got, ok := a.Add(d)
			if !ok || got != b {
				t.Fatalf("%v + %v = %v, %v, want %v", a, d, got, ok, b)
			}
		}
	}

	if _, ok := MustNew(0, 0).Add(Delta{X: -1, Y: 0}); ok {
		t.Error("(0,0) + <-1,0> should leave the board")
	}
}

func assertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Position{})); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", fmt.Sprint(msgAndArgs...), diff)
	}
}
