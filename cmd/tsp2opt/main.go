// Command tsp2opt reads a node file, builds the sequential tour, removes
// edge crossings with 2-opt and writes the result next to the input.
//
// Usage:
//
//	tsp2opt [flags] [input]
//
// Without an input argument the path is asked for interactively.
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("tsp2opt", "Approximate planar Euclidean TSP tours by removing edge crossings.")

	inputArg  = app.Arg("input", "Node file: one \"id x y\" record per line.").String()
	outputF   = app.Flag("output", "Output file (default: input with .tour extension).").Short('o').String()
	maxPasses = app.Flag("max-passes", "Upper bound on optimizer passes (0 = until no crossing can be removed).").Default("0").Int()
	timeLimit = app.Flag("time-limit", "Soft wall-clock budget for the optimizer (0 = none).").Default("0s").Duration()
	cacheDir  = app.Flag("cache", "Directory of the result cache (empty = no cache).").String()
	pngPath   = app.Flag("png", "Also draw the tour to this PNG file.").String()
	imgCat    = app.Flag("imgcat", "Print the PNG inline (iTerm).").Bool()
	noColor   = app.Flag("no-color", "Plain summary output.").Bool()
	verbosity = app.Flag("v", "Log verbosity (2 logs every pass).").Default("0").Int()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", strconv.Itoa(*verbosity))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          !*noColor,
	})
	defer klog.Flush()

	input := *inputArg
	if input == "" {
		var err error
		if input, err = promptInput(); err != nil {
			klog.Errorf("%v", err)
			klog.Flush()
			os.Exit(2)
		}
	}

	cfg := config{
		Input:     input,
		Output:    *outputF,
		MaxPasses: *maxPasses,
		TimeLimit: *timeLimit,
		CacheDir:  *cacheDir,
		PNG:       *pngPath,
		ImgCat:    *imgCat,
	}
	rep, err := run(cfg, os.Stdout)
	if err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
	printSummary(os.Stdout, rep, !*noColor)
}

// promptInput asks for the input path on the terminal.
func promptInput() (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		s, err := line.Prompt("input file: ")
		if err != nil {
			return "", errors.Wrap(err, "prompt")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err = os.Stat(s); err != nil {
			klog.Warningf("%v", err)
			continue
		}
		line.AppendHistory(s)

		return s, nil
	}
}
