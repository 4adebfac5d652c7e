// Package tsp - tour value and structural utilities.
//
// A Tour of n nodes is n directed edges where edge k ends where edge k+1
// starts (indices mod n). The value is immutable: accessors return copies
// and every rewiring helper returns a new Tour.
//
// Provided helpers:
//   - Validate: enforce the cycle invariant and cached lengths.
//   - VisitOrder / Nodes: origin ids / nodes in tour order.
//   - twoOptMove: remove two edges, reconnect, reverse the path between.
//
// Complexity: O(n) for every helper unless stated otherwise.
package tsp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Tour is a closed Hamiltonian cycle over a fixed node set.
type Tour struct {
	edges  []Edge
	length int64
}

// newTour takes ownership of edges and caches the total length.
func newTour(edges []Edge) *Tour {
	var sum int64
	for i := range edges {
		sum += edges[i].Length
	}

	return &Tour{edges: edges, length: sum}
}

// NewTour validates edges and wraps a private copy of them into a Tour.
// It is the entry point for tours that were not built by BuildInitialTour.
func NewTour(edges []Edge) (*Tour, error) {
	cp := make([]Edge, len(edges))
	copy(cp, edges)
	t := newTour(cp)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Len returns the number of edges (equal to the number of nodes).
func (t *Tour) Len() int {
	if t == nil {
		return 0
	}

	return len(t.edges)
}

// Length returns the total tour length.
func (t *Tour) Length() int64 {
	if t == nil {
		return 0
	}

	return t.length
}

// Edge returns the k-th edge.
func (t *Tour) Edge(k int) Edge {
	return t.edges[k]
}

// Edges returns a copy of the edge sequence.
func (t *Tour) Edges() []Edge {
	out := make([]Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// VisitOrder returns origin ids in tour order; out[k] == Edge(k).Origin.ID.
func (t *Tour) VisitOrder() []int {
	out := make([]int, len(t.edges))
	for k := range t.edges {
		out[k] = t.edges[k].Origin.ID
	}

	return out
}

// Nodes returns the nodes in tour order.
func (t *Tour) Nodes() []Node {
	out := make([]Node, len(t.edges))
	for k := range t.edges {
		out[k] = t.edges[k].Origin
	}

	return out
}

// Validate checks the cycle invariant:
//
//	edge[k].Destination.ID == edge[(k+1) mod n].Origin.ID for every k,
//	origin ids are pairwise distinct,
//	every node lies within ±MaxCoordinate,
//	edge[k].Length == Distance(edge[k].Origin, edge[k].Destination).
//
// Every failure wraps ErrInvalidTour.
func (t *Tour) Validate() error {
	if t == nil || len(t.edges) == 0 {
		return errors.Wrap(ErrInvalidTour, "no edges")
	}
	n := len(t.edges)
	ids := newIDIndex()

	var (
		k    int
		e    Edge
		next Edge
	)
	for k = 0; k < n; k++ {
		e = t.edges[k]
		next = t.edges[(k+1)%n]
		if e.Destination.ID != next.Origin.ID {
			return errors.Wrapf(ErrInvalidTour, "edge %d ends at %d but edge %d starts at %d",
				k, e.Destination.ID, (k+1)%n, next.Origin.ID)
		}
		if e.Destination != next.Origin {
			return errors.Wrapf(ErrInvalidTour, "node %d has two positions", e.Destination.ID)
		}
		if prev, seen := ids.lookup(e.Origin.ID); seen {
			return errors.Wrapf(ErrInvalidTour, "node %d visited at edges %d and %d", e.Origin.ID, prev, k)
		}
		ids.put(e.Origin.ID, k)
		if err := ValidateNode(e.Origin); err != nil {
			return errors.Wrapf(ErrInvalidTour, "edge %d: %v", k, err)
		}
		if e.Length != Distance(e.Origin, e.Destination) {
			return errors.Wrapf(ErrInvalidTour, "edge %d has stale length %d", k, e.Length)
		}
	}

	return nil
}

// String renders the tour as "[0 2 3 1 | 0] len=40".
func (t *Tour) String() string {
	if t.Len() == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for k, id := range t.VisitOrder() {
		if k > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", id)
	}
	fmt.Fprintf(&b, " | %d] len=%d", t.edges[0].Origin.ID, t.length)

	return b.String()
}

// twoOptMove returns the tour obtained by removing edges i and j (i < j,
// not adjacent) and reconnecting
//
//	edge_i.Origin      → edge_j.Origin
//	edge_i.Destination → edge_j.Destination
//
// with the path between them (edges i+1..j-1) reversed. Edges outside
// [i..j] are carried over unchanged; every edge inside gets a fresh value.
// The receiver is left untouched.
//
// Complexity: O(n) time and space.
func (t *Tour) twoOptMove(i, j int) *Tour {
	var (
		n   = len(t.edges)
		out = make([]Edge, n)
		ei  = t.edges[i]
		ej  = t.edges[j]
		k   int
	)
	copy(out[:i], t.edges[:i])
	out[i] = NewEdge(i, ei.Origin, ej.Origin)
	// Path b→…→c becomes c→…→b: position i+1+m takes edge j-1-m flipped.
	for k = i + 1; k < j; k++ {
		out[k] = t.edges[i+j-k].Reversed(k)
	}
	out[j] = NewEdge(j, ei.Destination, ej.Destination)
	copy(out[j+1:], t.edges[j+1:])

	return newTour(out)
}

// twoOptDelta is the length change of twoOptMove(i, j) without building it.
func (t *Tour) twoOptDelta(i, j int) int64 {
	ei, ej := t.edges[i], t.edges[j]

	return Distance(ei.Origin, ej.Origin) + Distance(ei.Destination, ej.Destination) -
		ei.Length - ej.Length
}
