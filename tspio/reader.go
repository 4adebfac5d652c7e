package tspio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/planartsp/tsp"
)

var (
	// ErrMalformedRecord indicates an input line that is not "id x y".
	ErrMalformedRecord = errors.New("tspio: malformed record")
	// ErrMalformedResult indicates an output file that cannot be read back.
	ErrMalformedResult = errors.New("tspio: malformed result")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// record is the grammar of one input line. Values are captured as text
// and converted in base 10 so that "010" is ten, not octal eight.
type record struct {
	ID string `parser:"@Int"`
	X  string `parser:"@Int"`
	Y  string `parser:"@Int"`
}

var recordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Whitespace", Pattern: `[ \t\r\f\v]+`},
})

var recordParser = participle.MustBuild[record](
	participle.Lexer(recordLexer),
	participle.Elide("Whitespace"),
)

// ReadNodes parses every non-blank line of r into a Node, in order.
// Coordinates outside ±tsp.MaxCoordinate fail with tsp.ErrCoordinateRange.
// An input without records yields an empty slice and no error.
func ReadNodes(r io.Reader) ([]tsp.Node, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		nodes  []tsp.Node
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		node, err := parseNode(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		nodes = append(nodes, node)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "tspio: scan input")
	}

	return nodes, nil
}

// ReadNodesFile opens path and parses it with ReadNodes.
func ReadNodesFile(path string) ([]tsp.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "tspio: open input")
	}
	defer f.Close()

	nodes, err := ReadNodes(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return nodes, nil
}

func parseNode(line string) (tsp.Node, error) {
	rec, err := recordParser.ParseString("", line)
	if err != nil {
		return tsp.Node{}, errors.Wrapf(ErrMalformedRecord, "%q: %v", line, err)
	}
	id, err := strconv.Atoi(rec.ID)
	if err != nil {
		return tsp.Node{}, errors.Wrapf(ErrMalformedRecord, "id %q: %v", rec.ID, err)
	}
	x, err := strconv.ParseInt(rec.X, 10, 64)
	if err != nil {
		return tsp.Node{}, errors.Wrapf(ErrMalformedRecord, "x %q: %v", rec.X, err)
	}
	y, err := strconv.ParseInt(rec.Y, 10, 64)
	if err != nil {
		return tsp.Node{}, errors.Wrapf(ErrMalformedRecord, "y %q: %v", rec.Y, err)
	}

	node := tsp.NewNode(id, x, y)
	if err = tsp.ValidateNode(node); err != nil {
		return tsp.Node{}, err
	}

	return node, nil
}
