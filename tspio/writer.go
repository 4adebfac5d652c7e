package tspio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/planartsp/tsp"
)

// OutputExt is the extension of files written by WriteResultFile.
const OutputExt = ".tour"

// Result is what the command reports for a solved instance.
type Result struct {
	Length int64 // total tour length
	Order  []int // Order[k] is the origin id of tour edge k
}

// ResultOf extracts the reportable result of a tour.
func ResultOf(t *tsp.Tour) Result {
	return Result{Length: t.Length(), Order: t.VisitOrder()}
}

// WriteResult writes res: the length, then one id per line.
func WriteResult(w io.Writer, res Result) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)

	buf = strconv.AppendInt(buf[:0], res.Length, 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "tspio: write length")
	}
	for _, id := range res.Order {
		buf = strconv.AppendInt(buf[:0], int64(id), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "tspio: write id")
		}
	}

	return errors.Wrap(bw.Flush(), "tspio: flush")
}

// WriteResultFile creates (or truncates) path and writes res into it.
func WriteResultFile(path string, res Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "tspio: create output")
	}
	if err = WriteResult(f, res); err != nil {
		f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "tspio: close output")
}

// MarshalResult returns the output-file encoding of res.
func MarshalResult(res Result) []byte {
	var b bytes.Buffer
	_ = WriteResult(&b, res) // bytes.Buffer never fails

	return b.Bytes()
}

// ReadResult parses the format written by WriteResult.
func ReadResult(r io.Reader) (Result, error) {
	sc := bufio.NewScanner(r)
	var (
		res    Result
		lineNo int
		seen   bool
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return Result{}, errors.Wrapf(ErrMalformedResult, "line %d: %q", lineNo, line)
		}
		if !seen {
			res.Length, seen = v, true
			continue
		}
		res.Order = append(res.Order, int(v))
	}
	if err := sc.Err(); err != nil {
		return Result{}, errors.Wrap(err, "tspio: scan result")
	}
	if !seen {
		return Result{}, errors.Wrap(ErrMalformedResult, "missing length")
	}

	return res, nil
}

// OutputPath derives the output file for an input path: the extension is
// replaced by OutputExt, in the same directory.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + OutputExt
}
