package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/logrusorgru/aurora"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/planartsp/render"
	"github.com/katalvlaran/planartsp/store"
	"github.com/katalvlaran/planartsp/tsp"
	"github.com/katalvlaran/planartsp/tspio"
)

// config is the command line, already parsed.
type config struct {
	Input     string
	Output    string // defaults to tspio.OutputPath(Input)
	MaxPasses int
	TimeLimit time.Duration
	CacheDir  string // empty disables the cache
	PNG       string // empty disables rendering
	ImgCat    bool
}

// timings records wall-clock time per stage.
type timings struct {
	Read, Build, Optimize, Write time.Duration
}

func (t timings) total() time.Duration {
	return t.Read + t.Build + t.Optimize + t.Write
}

// report is what a run produced.
type report struct {
	Nodes    int
	Initial  int64
	Result   tspio.Result
	Stats    tsp.Stats
	CacheHit bool
	Output   string
	Timings  timings
}

// run executes one instance end to end and returns its report. out receives
// the inline image when cfg.ImgCat is set.
func run(cfg config, out io.Writer) (report, error) {
	var (
		rep report
		t0  = time.Now()
	)

	nodes, err := tspio.ReadNodesFile(cfg.Input)
	if err != nil {
		return rep, err
	}
	rep.Nodes = len(nodes)
	rep.Timings.Read = time.Since(t0)
	klog.V(1).Infof("read %d nodes from %s", len(nodes), cfg.Input)

	opts := tsp.DefaultOptions()
	opts.MaxPasses = cfg.MaxPasses
	opts.TimeLimit = cfg.TimeLimit
	opts.OnPass = func(p tsp.PassInfo) error {
		klog.V(2).Infof("pass %d: %d crossings, %d swaps, length %d", p.Pass, p.Crossings, p.Swaps, p.Length)
		return nil
	}

	var cache *store.Store
	if cfg.CacheDir != "" {
		if cache, err = store.Open(cfg.CacheDir); err != nil {
			return rep, err
		}
		defer func() {
			if cerr := cache.Close(); cerr != nil {
				klog.Warningf("cache: %v", cerr)
			}
		}()
	}
	key := store.KeyOf(nodes, opts)

	t0 = time.Now()
	initial, err := tsp.BuildInitialTour(nodes)
	if err != nil {
		return rep, err
	}
	rep.Initial = initial.Length()
	rep.Timings.Build = time.Since(t0)

	t0 = time.Now()
	best, hit := fromCache(cache, key, nodes)
	if hit {
		rep.CacheHit = true
		rep.Stats = tsp.Stats{Initial: initial.Length(), Final: best.Length()}
	} else {
		best, rep.Stats, err = tsp.OptimizeWithStats(initial, opts)
		if err != nil {
			return rep, err
		}
	}
	rep.Timings.Optimize = time.Since(t0)
	rep.Result = tspio.ResultOf(best)

	t0 = time.Now()
	rep.Output = cfg.Output
	if rep.Output == "" {
		rep.Output = tspio.OutputPath(cfg.Input)
	}
	if err = tspio.WriteResultFile(rep.Output, rep.Result); err != nil {
		return rep, err
	}
	rep.Timings.Write = time.Since(t0)

	// Runs cut short by the clock are not reproducible; keep them out of the cache.
	if cache != nil && !hit && rep.Stats.Stop != tsp.StopTimeLimit {
		if err = cache.Put(key, rep.Result); err != nil {
			klog.Warningf("cache: %v", err)
		}
	}

	if cfg.PNG != "" {
		if err = render.PNG(cfg.PNG, best, render.DefaultOptions()); err != nil {
			return rep, err
		}
		if cfg.ImgCat {
			if err = render.Cat(cfg.PNG, out); err != nil {
				klog.Warningf("%v", err)
			}
		}
	}

	return rep, nil
}

// fromCache rebuilds the cached tour for key. Entries that do not describe
// a valid tour over nodes are ignored.
func fromCache(cache *store.Store, key store.Key, nodes []tsp.Node) (*tsp.Tour, bool) {
	if cache == nil {
		return nil, false
	}
	res, found, err := cache.Get(key)
	if err != nil {
		klog.Warningf("cache: %v", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	byID := make(map[int]tsp.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	ordered := make([]tsp.Node, 0, len(res.Order))
	for _, id := range res.Order {
		n, ok := byID[id]
		if !ok {
			klog.Warningf("cache: entry %x names unknown node %d", key[:], id)
			return nil, false
		}
		ordered = append(ordered, n)
	}
	if len(ordered) != len(nodes) {
		return nil, false
	}
	tour, err := tsp.BuildInitialTour(ordered)
	if err != nil || tour.Length() != res.Length {
		klog.Warningf("cache: entry %x does not match its instance", key[:])
		return nil, false
	}
	klog.V(1).Infof("cache hit %x", key[:])

	return tour, true
}

// printSummary writes a human readable summary of rep.
func printSummary(w io.Writer, rep report, color bool) {
	au := aurora.NewAurora(color)

	src := "optimized"
	if rep.CacheHit {
		src = "cached"
	}
	fmt.Fprintf(w, "%s %s nodes, length %s -> %s (%s)\n",
		au.Bold("tsp2opt:"),
		humanize.Comma(int64(rep.Nodes)),
		humanize.Comma(rep.Initial),
		au.Green(humanize.Comma(rep.Result.Length)),
		src,
	)
	if !rep.CacheHit {
		fmt.Fprintf(w, "  passes %d, swaps %s, stop %s\n",
			rep.Stats.Passes, humanize.Comma(int64(rep.Stats.Swaps)), au.Cyan(rep.Stats.Stop.String()))
	}
	fmt.Fprintf(w, "  read %s, build %s, optimize %s, write %s, total %s\n",
		rep.Timings.Read.Round(time.Microsecond),
		rep.Timings.Build.Round(time.Microsecond),
		rep.Timings.Optimize.Round(time.Microsecond),
		rep.Timings.Write.Round(time.Microsecond),
		au.Yellow(rep.Timings.total().Round(time.Microsecond)),
	)
	fmt.Fprintf(w, "  wrote %s\n", rep.Output)
}
