package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planartsp/store"
	"github.com/katalvlaran/planartsp/tsp"
)

const squareInput = "0 0 0\n2 0 10\n\n1 10 0\n3 10 10\n"

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "square.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestRun_WritesTourFile(t *testing.T) {
	in := writeInput(t, squareInput)

	rep, err := run(config{Input: in}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Nodes)
	assert.Equal(t, int64(48), rep.Initial)
	assert.Equal(t, int64(40), rep.Result.Length)
	assert.False(t, rep.CacheHit)
	assert.Equal(t, filepath.Join(filepath.Dir(in), "square.tour"), rep.Output)

	raw, err := os.ReadFile(rep.Output)
	require.NoError(t, err)
	assert.Equal(t, "40\n0\n2\n3\n1\n", string(raw))
}

func TestRun_CacheRoundTrip(t *testing.T) {
	in := writeInput(t, squareInput)
	cfg := config{Input: in, CacheDir: t.TempDir(), Output: filepath.Join(t.TempDir(), "out.tour")}

	first, err := run(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := run(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Result, second.Result)

	// A different pass bound is a different key.
	cfg.MaxPasses = 1
	third, err := run(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, third.CacheHit)
}

func TestRun_ClosesCacheAfterPut(t *testing.T) {
	dir := t.TempDir()
	cfg := config{Input: writeInput(t, squareInput), CacheDir: dir, Output: filepath.Join(t.TempDir(), "out.tour")}

	rep, err := run(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	// The directory lock is free and the entry is on disk once run returns.
	s, err := store.Open(dir)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	nodes := []tsp.Node{
		tsp.NewNode(0, 0, 0), tsp.NewNode(2, 0, 10),
		tsp.NewNode(1, 10, 0), tsp.NewNode(3, 10, 10),
	}
	res, found, err := s.Get(store.KeyOf(nodes, tsp.DefaultOptions()))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rep.Result, res)
}

func TestRun_RendersPNG(t *testing.T) {
	in := writeInput(t, squareInput)
	png := filepath.Join(t.TempDir(), "square.png")

	_, err := run(config{Input: in, PNG: png}, &bytes.Buffer{})
	require.NoError(t, err)
	st, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}

func TestRun_Errors(t *testing.T) {
	_, err := run(config{Input: writeInput(t, "\n\n")}, &bytes.Buffer{})
	assert.ErrorIs(t, err, tsp.ErrEmptyInput)

	_, err = run(config{Input: writeInput(t, "1 0 0\n1 5 5\n")}, &bytes.Buffer{})
	assert.ErrorIs(t, err, tsp.ErrDuplicateNodeID)

	_, err = run(config{Input: writeInput(t, "0 0 0\n1 8000000000 0\n")}, &bytes.Buffer{})
	assert.ErrorIs(t, err, tsp.ErrCoordinateRange)

	_, err = run(config{Input: filepath.Join(t.TempDir(), "missing.txt")}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	rep, err := run(config{Input: writeInput(t, squareInput)}, &bytes.Buffer{})
	require.NoError(t, err)

	var b bytes.Buffer
	printSummary(&b, rep, false)
	out := b.String()
	assert.Contains(t, out, "tsp2opt: 4 nodes, length 48 -> 40 (optimized)")
	assert.Contains(t, out, "stop converged")
	assert.Contains(t, out, "wrote "+rep.Output)
}
