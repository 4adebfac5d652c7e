// Package tsp - validation utilities shared by the builder and optimizer.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"
)

// idIndex maps node ids to the position where they were first seen, so a
// repeat can be reported against its first occurrence.
type idIndex struct {
	m *treemap.Map
}

func newIDIndex() idIndex {
	return idIndex{m: treemap.NewWithIntComparator()}
}

// lookup returns the recorded position of id, if any.
func (x idIndex) lookup(id int) (int, bool) {
	v, found := x.m.Get(id)
	if !found {
		return 0, false
	}

	return v.(int), true
}

func (x idIndex) put(id, pos int) {
	x.m.Put(id, pos)
}

// ValidateNode reports ErrCoordinateRange when n lies outside the square
// [-MaxCoordinate, MaxCoordinate]².
func ValidateNode(n Node) error {
	if n.X < -MaxCoordinate || n.X > MaxCoordinate || n.Y < -MaxCoordinate || n.Y > MaxCoordinate {
		return errors.Wrapf(ErrCoordinateRange, "node %d at (%d, %d) exceeds ±%d", n.ID, n.X, n.Y, MaxCoordinate)
	}

	return nil
}

// validateNodes rejects empty input, out-of-range coordinates and
// duplicate ids.
//
// Complexity: O(n log n).
func validateNodes(nodes []Node) error {
	if len(nodes) == 0 {
		return ErrEmptyInput
	}
	ids := newIDIndex()
	for k := range nodes {
		if err := ValidateNode(nodes[k]); err != nil {
			return errors.Wrapf(err, "position %d", k)
		}
		if prev, seen := ids.lookup(nodes[k].ID); seen {
			return errors.Wrapf(ErrDuplicateNodeID, "id %d at positions %d and %d", nodes[k].ID, prev, k)
		}
		ids.put(nodes[k].ID, k)
	}

	return nil
}

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxPasses < 0 {
		return errors.Wrapf(ErrInvalidOptions, "MaxPasses %d < 0", opts.MaxPasses)
	}
	if opts.TimeLimit < 0 {
		return errors.Wrapf(ErrInvalidOptions, "TimeLimit %s < 0", opts.TimeLimit)
	}

	return nil
}
