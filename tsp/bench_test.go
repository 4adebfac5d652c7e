// Package tsp_test - benchmarks for the planar TSP core.
// Scope:
//   - Optimize on random instances (medium n; full run to local optimum).
//   - Micro-benchmarks for SegmentsCross and BuildInitialTour.
//
// Policy:
//   - Fixed seeds (seedDet); inputs are built outside the timer.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/planartsp/tsp"
)

func benchOptimize(b *testing.B, n int) {
	nodes := randomNodes(seedDet, n, 10_000)
	start, err := tsp.BuildInitialTour(nodes)
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tsp.Optimize(start, opts); err != nil {
			b.Fatalf("optimize: %v", err)
		}
	}
}

// BenchmarkOptimize_n100 measures a full 2-opt run on 100 random nodes.
func BenchmarkOptimize_n100(b *testing.B) { benchOptimize(b, 100) }

// BenchmarkOptimize_n400 measures a full 2-opt run on 400 random nodes.
func BenchmarkOptimize_n400(b *testing.B) { benchOptimize(b, 400) }

// BenchmarkSegmentsCross measures the O(1) orientation test.
func BenchmarkSegmentsCross(b *testing.B) {
	e1 := tsp.NewEdge(0, tsp.NewNode(0, 0, 0), tsp.NewNode(1, 10, 10))
	e2 := tsp.NewEdge(1, tsp.NewNode(2, 0, 10), tsp.NewNode(3, 10, 0))

	var hits int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if tsp.SegmentsCross(e1, e2) {
			hits++
		}
	}
	if hits != b.N {
		b.Fatalf("expected every call to report a crossing")
	}
}

// BenchmarkBuildInitialTour_n1000 measures construction with duplicate checks.
func BenchmarkBuildInitialTour_n1000(b *testing.B) {
	nodes := randomNodes(seedDet, 1000, 10_000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.BuildInitialTour(nodes); err != nil {
			b.Fatalf("build: %v", err)
		}
	}
}
