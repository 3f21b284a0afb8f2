package hex

import "fmt"

// Delta is the signed displacement between two tiles.
type Delta struct {
	X, Y int
}

// IsValidDelta reports whether (x, y) is a displacement between two tiles.
func IsValidDelta(x, y int) bool {
	return abs(x) <= Max && abs(y) <= Max && abs(x-y) <= MaxFile
}

// IsZero reports whether d is the null displacement.
func (d Delta) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Stride splits d into its smallest integer step and the number of steps.
// It panics on the zero delta, which has no direction.
func (d Delta) Stride() (Delta, int) {
	if d.IsZero() {
		panic("hex: stride of zero delta")
	}
	n := gcd(abs(d.X), abs(d.Y))
	return Delta{X: d.X / n, Y: d.Y / n}, n
}

// Distance returns the hex distance covered by d: the larger component
// when both point the same way, the sum of magnitudes otherwise.
func (d Delta) Distance() int {
	if (d.X >= 0) == (d.Y >= 0) || d.X == 0 || d.Y == 0 {
		return max(abs(d.X), abs(d.Y))
	}
	return abs(d.X) + abs(d.Y)
}

// Scale returns d multiplied by n.
func (d Delta) Scale(n int) Delta {
	return Delta{X: d.X * n, Y: d.Y * n}
}

// String returns the delta as "<dx,dy>".
func (d Delta) String() string {
	return fmt.Sprintf("<%d,%d>", d.X, d.Y)
}
