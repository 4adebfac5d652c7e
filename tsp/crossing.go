// Package tsp - crossing detection for tour edges.
//
// Two edges cross when their segments meet at a point strictly inside
// both. Touching endpoints, collinear overlap, shared nodes and
// zero-length edges never count: a 2-opt move on such a pair cannot
// remove a crossing.
//
// The test is the standard orientation predicate. Both products of the
// cross product are formed in 128 bits, so the sign is exact whenever the
// coordinate differences fit in int64; every node accepted by ValidateNode
// qualifies.
package tsp

import "math/bits"

// Orientation returns the sign of the cross product (q-p)×(r-p):
//
//	+1 - r lies to the left of p→q (counter-clockwise turn),
//	-1 - r lies to the right (clockwise turn),
//	 0 - p, q, r are collinear.
func Orientation(p, q, r Node) int {
	return mul128(q.X-p.X, r.Y-p.Y).cmp(mul128(q.Y-p.Y, r.X-p.X))
}

// int128 is a two's complement 128-bit integer.
type int128 struct {
	hi int64
	lo uint64
}

// mul128 returns the exact product x·y.
func mul128(x, y int64) int128 {
	hi, lo := bits.Mul64(absU64(x), absU64(y))
	if (x < 0) != (y < 0) {
		lo = ^lo + 1
		hi = ^hi
		if lo == 0 {
			hi++
		}
	}

	return int128{hi: int64(hi), lo: lo}
}

// cmp returns -1, 0 or +1 as a is less than, equal to or greater than b.
func (a int128) cmp(b int128) int {
	switch {
	case a.hi < b.hi:
		return -1
	case a.hi > b.hi:
		return 1
	case a.lo < b.lo:
		return -1
	case a.lo > b.lo:
		return 1
	default:
		return 0
	}
}

// absU64 returns |x|; math.MinInt64 maps to 1<<63.
func absU64(x int64) uint64 {
	u := uint64(x)
	if x < 0 {
		u = -u
	}

	return u
}

// SegmentsCross reports whether e1 and e2, seen as undirected segments,
// properly intersect. Edges sharing an endpoint id and degenerate edges
// are never reported as crossing. The result is symmetric in e1, e2.
//
// Complexity: O(1).
func SegmentsCross(e1, e2 Edge) bool {
	a, b := e1.Origin, e1.Destination
	c, d := e2.Origin, e2.Destination

	if degenerate(e1) || degenerate(e2) {
		return false
	}
	if a.ID == c.ID || a.ID == d.ID || b.ID == c.ID || b.ID == d.ID {
		return false
	}

	o1 := Orientation(a, b, c)
	o2 := Orientation(a, b, d)
	o3 := Orientation(c, d, a)
	o4 := Orientation(c, d, b)
	if o1 == 0 || o2 == 0 || o3 == 0 || o4 == 0 {
		return false
	}

	return o1 != o2 && o3 != o4
}

// degenerate reports a zero-length edge (self-loop or coincident points).
func degenerate(e Edge) bool {
	return e.Origin.ID == e.Destination.ID ||
		(e.Origin.X == e.Destination.X && e.Origin.Y == e.Destination.Y)
}
