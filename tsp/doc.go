// Package tsp computes approximate tours for the planar Euclidean
// Travelling Salesman Problem on integer points.
//
// The package is organised in three stages:
//
//   - Distance - rounded Euclidean distance between two Nodes.
//
//   - BuildInitialTour - a naive closed tour that visits the nodes in
//     exactly the order given (no nearest-neighbour logic).
//
//   - Optimize - first-improvement local search: every pair of
//     non-adjacent edges is tested with SegmentsCross, and a crossing
//     pair is resolved by the classic 2-opt reconnection (the path
//     between the two edges is reversed). Only strictly shorter tours
//     are accepted, so the search always terminates.
//
// Tours are immutable values. Every accepted move produces a fresh Edge
// slice, so a Tour handed out earlier is never modified behind the
// caller's back.
//
// Errors are sentinels (ErrEmptyInput, ErrDuplicateNodeID,
// ErrCoordinateRange, ErrInvalidTour, ErrInvalidOptions); match them with
// errors.Is. Coordinates are bounded by MaxCoordinate.
//
// Quick example:
//
//	nodes := []tsp.Node{{ID: 0}, {ID: 2, Y: 10}, {ID: 1, X: 10}, {ID: 3, X: 10, Y: 10}}
//	t, _ := tsp.BuildInitialTour(nodes)  // two crossing diagonals, length 48
//	t, _ = tsp.Optimize(t, tsp.DefaultOptions())
//	fmt.Println(t.Length(), t.VisitOrder()) // 40 [0 2 3 1]
package tsp
