package tsp

import "math"

// Distance returns the Euclidean distance between a and b rounded to the
// nearest integer. Ties round half away from zero (math.Round), which for
// non-negative distances is round-half-up.
//
// Two distinct but very close points may be at distance 0.
//
// Complexity: O(1).
func Distance(a, b Node) int64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return int64(math.Round(math.Hypot(dx, dy)))
}
