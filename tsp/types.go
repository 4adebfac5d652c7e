// Package tsp - shared types, sentinels and options.
//
// Design:
//   - Node and Edge are plain values; every field is supplied at construction.
//   - Edge.Length is derived data and is only ever computed by NewEdge.
//   - Strict sentinel errors; context is attached with errors.Wrapf.
package tsp

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyInput indicates that no nodes were supplied.
	ErrEmptyInput = errors.New("tsp: node list is empty")
	// ErrDuplicateNodeID indicates two input nodes share an id.
	ErrDuplicateNodeID = errors.New("tsp: duplicate node id")
	// ErrInvalidTour indicates a tour violating the cycle invariant.
	ErrInvalidTour = errors.New("tsp: tour is not a valid closed cycle")
	// ErrInvalidOptions indicates an ill-formed Options value.
	ErrInvalidOptions = errors.New("tsp: invalid options")
	// ErrCoordinateRange indicates a node outside ±MaxCoordinate.
	ErrCoordinateRange = errors.New("tsp: coordinate out of range")
)

// MaxCoordinate bounds |X| and |Y| of every node. Within it coordinate
// differences, distances and tour lengths all fit in int64.
const MaxCoordinate int64 = 1 << 30

// Node is a point of the instance. Identity is ID.
type Node struct {
	ID int
	X  int64
	Y  int64
}

// NewNode returns a Node with all fields set.
func NewNode(id int, x, y int64) Node {
	return Node{ID: id, X: x, Y: y}
}

// Edge is a directed tour edge. Length is always Distance(Origin, Destination).
type Edge struct {
	ID          int
	Origin      Node
	Destination Node
	Length      int64
}

// NewEdge builds an edge and computes its cached length.
func NewEdge(id int, origin, destination Node) Edge {
	return Edge{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Length:      Distance(origin, destination),
	}
}

// Reversed returns the same segment travelled the other way, with a new id.
func (e Edge) Reversed(id int) Edge {
	return NewEdge(id, e.Destination, e.Origin)
}

// StopReason tells why Optimize stopped.
type StopReason int

const (
	// StopConverged means a full pass accepted no move (local optimum).
	StopConverged StopReason = iota
	// StopMaxPasses means Options.MaxPasses was reached.
	StopMaxPasses
	// StopTimeLimit means Options.TimeLimit elapsed.
	StopTimeLimit
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopConverged:
		return "converged"
	case StopMaxPasses:
		return "max-passes"
	case StopTimeLimit:
		return "time-limit"
	default:
		return "unknown"
	}
}

// PassInfo is handed to Options.OnPass after every completed pass.
type PassInfo struct {
	Pass      int   // 1-based pass number
	Swaps     int   // moves accepted during this pass
	Crossings int   // crossing pairs found during this pass
	Length    int64 // tour length after the pass
}

// Options configures Optimize.
type Options struct {
	// MaxPasses bounds the number of full passes; 0 means unlimited.
	MaxPasses int

	// TimeLimit is a soft wall-clock budget; 0 means unlimited.
	// It is checked between pair evaluations, not inside them.
	TimeLimit time.Duration

	// OnPass, if set, is called after each pass. A non-nil error aborts
	// the run and is returned to the caller.
	OnPass func(PassInfo) error
}

// DefaultOptions returns options that run until a local optimum.
func DefaultOptions() Options {
	return Options{}
}

// Stats summarises an optimisation run.
type Stats struct {
	Passes    int
	Swaps     int
	Crossings int
	Initial   int64
	Final     int64
	Stop      StopReason
}
