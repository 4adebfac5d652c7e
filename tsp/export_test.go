package tsp

// White-box bridge: exposes unexported helpers to tsp_test only.

// UnsafeTourForTest wraps edges without validation, to feed malformed
// tours into Optimize.
func UnsafeTourForTest(edges []Edge) *Tour {
	return newTour(edges)
}

// TwoOptMoveForTest applies the 2-opt reconnection on positions i < j.
func TwoOptMoveForTest(t *Tour, i, j int) *Tour {
	return t.twoOptMove(i, j)
}

// TwoOptDeltaForTest is the length change of TwoOptMoveForTest(t, i, j).
func TwoOptDeltaForTest(t *Tour, i, j int) int64 {
	return t.twoOptDelta(i, j)
}
