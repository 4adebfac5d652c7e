// Package planartsp approximates tours for the planar Euclidean Travelling
// Salesman Problem on integer points.
//
// What is in the box?
//
//	tsp/          - the core: rounded distances, sequential initial tour,
//	                crossing detection and 2-opt crossing removal
//	tspio/        - "id x y" input parser and tour output writer
//	store/        - on-disk cache of solved instances
//	render/       - PNG drawing of a tour
//	cmd/tsp2opt/  - command line front end
//	examples/     - a small runnable scenario
//
// Quick ASCII example:
//
//	2   3        2───3
//	│╲ ╱│        │   │
//	│ ╳ │  ──▶   │   │
//	│╱ ╲│        │   │
//	0   1        0───1
//
// The input order [0 2 1 3] crosses itself; one 2-opt move turns the
// two diagonals into the square's perimeter.
//
//	go install github.com/katalvlaran/planartsp/cmd/tsp2opt@latest
package planartsp
