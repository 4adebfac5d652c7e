// Package tsp - crossing-driven 2-opt local search.
//
// Optimize performs deterministic first-improvement passes over a closed tour.
//   - Every unordered pair (i, j) of non-adjacent edge positions is visited
//     in lexicographic order.
//   - A pair is only considered when SegmentsCross reports a proper crossing.
//   - The move removes edges i, j, adds (o_i→o_j) and (d_i→d_j) and reverses
//     the path in between; it is accepted iff the new total length is
//     strictly smaller. Scanning continues on the accepted tour.
//
// Contracts:
//   - The input tour satisfies the cycle invariant (else ErrInvalidTour).
//   - The returned tour starts at the same node as the input tour.
//   - Length never increases; with integer lengths the search terminates.
//
// Complexity:
//   - One pass: O(n²) O(1) checks, plus O(n) per accepted move.
//   - Overall: O(passes·n²) time; O(n) extra space per accepted move.
package tsp

import (
	"time"

	"github.com/pkg/errors"
)

// deadlineStride is the number of pair checks between two clock reads.
const deadlineStride = 1024

// Optimize removes edge crossings from t with 2-opt moves and returns the
// improved tour. t itself is never modified.
func Optimize(t *Tour, opts Options) (*Tour, error) {
	out, _, err := OptimizeWithStats(t, opts)

	return out, err
}

// OptimizeWithStats is Optimize plus a summary of the run.
func OptimizeWithStats(t *Tour, opts Options) (*Tour, Stats, error) {
	if err := validateOptions(opts); err != nil {
		return nil, Stats{}, err
	}
	if err := t.Validate(); err != nil {
		return nil, Stats{}, err
	}

	var (
		cur   = t
		n     = t.Len()
		stats = Stats{Initial: t.Length()}
	)

	// Soft deadline, sampled every deadlineStride pair checks.
	var (
		useDeadline = opts.TimeLimit > 0
		deadline    time.Time
		step        int
	)
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}
	expired := func() bool {
		step++
		if !useDeadline || step%deadlineStride != 0 {
			return false
		}

		return time.Now().After(deadline)
	}

	for {
		var (
			i, j      int
			swaps     int
			crossings int
			timedOut  bool
			cand      *Tour
		)

	scan:
		for i = 0; i < n-2; i++ {
			for j = i + 2; j < n; j++ {
				if i == 0 && j == n-1 {
					continue // first and last edge share the start node
				}
				if expired() {
					timedOut = true
					break scan
				}
				if !SegmentsCross(cur.edges[i], cur.edges[j]) {
					continue
				}
				crossings++
				// Rounded lengths can make a geometric improvement a tie.
				if cur.twoOptDelta(i, j) >= 0 {
					continue
				}
				cand = cur.twoOptMove(i, j)
				if cand.Length() < cur.Length() {
					cur = cand
					swaps++
				}
			}
		}

		stats.Passes++
		stats.Swaps += swaps
		stats.Crossings += crossings

		if opts.OnPass != nil {
			info := PassInfo{Pass: stats.Passes, Swaps: swaps, Crossings: crossings, Length: cur.Length()}
			if err := opts.OnPass(info); err != nil {
				return nil, stats, errors.Wrapf(err, "tsp: OnPass aborted at pass %d", stats.Passes)
			}
		}

		if timedOut {
			stats.Stop = StopTimeLimit
			break
		}
		if swaps == 0 {
			stats.Stop = StopConverged
			break
		}
		if opts.MaxPasses > 0 && stats.Passes >= opts.MaxPasses {
			stats.Stop = StopMaxPasses
			break
		}
	}

	if err := cur.Validate(); err != nil {
		return nil, stats, err
	}
	stats.Final = cur.Length()

	return cur, stats, nil
}
