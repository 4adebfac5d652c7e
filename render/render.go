// Package render draws tours as PNG images.
//
// The drawing is flipped so the origin is at the bottom left, scaled to
// fit Options.Size and padded so nodes on the hull stay visible.
package render

import (
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/katalvlaran/planartsp/tsp"
)

// ErrNoTour indicates a nil or empty tour.
var ErrNoTour = errors.New("render: nothing to draw")

// Options controls the picture.
type Options struct {
	Size       int     // longest side of the image, in pixels
	Padding    float64 // blank border, in pixels
	NodeRadius float64
	LineWidth  float64
	Labels     bool // draw node ids next to nodes
}

// DefaultOptions returns a 800px picture with thin edges.
func DefaultOptions() Options {
	return Options{Size: 800, Padding: 24, NodeRadius: 3, LineWidth: 1.5}
}

// bounds is the bounding box of the tour nodes.
type bounds struct {
	minX, minY, maxX, maxY float64
}

func boundsOf(nodes []tsp.Node) bounds {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, n := range nodes {
		b.minX = math.Min(b.minX, float64(n.X))
		b.minY = math.Min(b.minY, float64(n.Y))
		b.maxX = math.Max(b.maxX, float64(n.X))
		b.maxY = math.Max(b.maxY, float64(n.Y))
	}

	return b
}

// Draw renders t into a new gg context.
func Draw(t *tsp.Tour, opts Options) (*gg.Context, error) {
	if t.Len() == 0 {
		return nil, ErrNoTour
	}
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}

	nodes := t.Nodes()
	b := boundsOf(nodes)
	spanX := math.Max(b.maxX-b.minX, 1)
	spanY := math.Max(b.maxY-b.minY, 1)
	inner := float64(opts.Size) - 2*opts.Padding
	if inner <= 0 {
		inner = float64(opts.Size)
	}
	scale := inner / math.Max(spanX, spanY)

	width := int(math.Round(spanX*scale + 2*opts.Padding))
	height := int(math.Round(spanY*scale + 2*opts.Padding))
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// Map instance coordinates to pixels, y up.
	px := func(n tsp.Node) (float64, float64) {
		x := opts.Padding + (float64(n.X)-b.minX)*scale
		y := float64(height) - opts.Padding - (float64(n.Y)-b.minY)*scale
		return x, y
	}

	c.SetRGB(0.2, 0.3, 0.8)
	c.SetLineWidth(opts.LineWidth)
	for k := 0; k < t.Len(); k++ {
		e := t.Edge(k)
		x0, y0 := px(e.Origin)
		x1, y1 := px(e.Destination)
		c.DrawLine(x0, y0, x1, y1)
	}
	c.Stroke()

	for k, n := range nodes {
		x, y := px(n)
		if k == 0 {
			c.SetRGB(0.85, 0.1, 0.1) // start node
		} else {
			c.SetRGB(0, 0, 0)
		}
		c.DrawCircle(x, y, opts.NodeRadius)
		c.Fill()
		if opts.Labels {
			c.DrawStringAnchored(strconv.Itoa(n.ID), x+opts.NodeRadius+1, y-opts.NodeRadius-1, 0, 0)
		}
	}

	return c, nil
}

// PNG draws t and saves it to path.
func PNG(path string, t *tsp.Tour, opts Options) error {
	c, err := Draw(t, opts)
	if err != nil {
		return err
	}

	return errors.Wrap(c.SavePNG(path), "render: save png")
}

// Cat prints a PNG file inline on terminals that support the iTerm
// image protocol.
func Cat(path string, w io.Writer) error {
	return errors.Wrap(imgcat.CatFile(path, w), "render: imgcat")
}
