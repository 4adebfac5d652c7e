package tsp

// BuildInitialTour connects the nodes in the order given:
//
//	edge k   : nodes[k]   → nodes[k+1]   for k in 0..n-2
//	edge n-1 : nodes[n-1] → nodes[0]
//
// No distance information is used; tour quality depends entirely on the
// input order and is left to Optimize. A single node yields a one-edge
// self-loop of length 0.
//
// Errors: ErrEmptyInput, ErrDuplicateNodeID (wrapped with the offending id).
//
// Complexity: O(n log n) (duplicate detection), O(n) space.
func BuildInitialTour(nodes []Node) (*Tour, error) {
	if err := validateNodes(nodes); err != nil {
		return nil, err
	}

	n := len(nodes)
	edges := make([]Edge, n)
	for k := 0; k < n; k++ {
		edges[k] = NewEdge(k, nodes[k], nodes[(k+1)%n])
	}

	return newTour(edges), nil
}
