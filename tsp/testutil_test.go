// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planartsp/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet seeds every pseudo-random instance.
	seedDet = int64(42)

	// spanSmall is the coordinate range for random instances.
	spanSmall = 1000

	// sizeMedium is the default instance size for property loops.
	sizeMedium = 60
)

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// squareCrossed returns the unit-square scenario ordered [0,2,1,3]: the
// initial tour is two vertical sides plus both diagonals.
func squareCrossed() []tsp.Node {
	return []tsp.Node{
		tsp.NewNode(0, 0, 0),
		tsp.NewNode(2, 0, 10),
		tsp.NewNode(1, 10, 0),
		tsp.NewNode(3, 10, 10),
	}
}

// randomNodes draws n nodes with ids 0..n-1 and coordinates in [0, span).
func randomNodes(seed int64, n int, span int64) []tsp.Node {
	r := rand.New(rand.NewSource(seed))
	out := make([]tsp.Node, n)
	for i := 0; i < n; i++ {
		out[i] = tsp.NewNode(i, r.Int63n(span), r.Int63n(span))
	}

	return out
}

// mustBuild builds the initial tour or fails the test.
func mustBuild(t *testing.T, nodes []tsp.Node) *tsp.Tour {
	t.Helper()
	tour, err := tsp.BuildInitialTour(nodes)
	require.NoError(t, err)

	return tour
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requireSameNodeSet checks that the tour visits exactly the ids of nodes.
func requireSameNodeSet(t *testing.T, tour *tsp.Tour, nodes []tsp.Node) {
	t.Helper()
	got := tour.VisitOrder()
	want := make([]int, len(nodes))
	for i := range nodes {
		want[i] = nodes[i].ID
	}
	sort.Ints(got)
	sort.Ints(want)
	require.Equal(t, want, got)
}

// sameCycleEitherDir reports whether a and b are the same cyclic sequence,
// allowing rotation and reversal.
func sameCycleEitherDir(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	rev := slices.Clone(b)
	slices.Reverse(rev)
	for _, cand := range [][]int{b, rev} {
		p := slices.Index(cand, a[0])
		if p < 0 {
			return false
		}
		ok := true
		for i := range a {
			if a[i] != cand[(p+i)%len(cand)] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}

	return false
}
