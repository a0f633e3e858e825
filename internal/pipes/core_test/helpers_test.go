package core_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
	"github.com/vovakirdan/pipeloop/internal/pipes/puzzles"
	"github.com/vovakirdan/pipeloop/internal/pipes/puzzles/formats"
)

// getTestdataPath returns path to testdata/puzzles.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "puzzles")
}

// mustMap parses grid rows or fails the test.
func mustMap(t *testing.T, rows ...string) *core.TileMap {
	t.Helper()
	m, err := formats.ParseGrid(rows)
	require.NoError(t, err)
	return m
}

// mustPuzzle loads a fixture puzzle by ID.
func mustPuzzle(t *testing.T, id string) puzzles.Puzzle {
	t.Helper()
	p, err := puzzles.NewLoader(getTestdataPath()).LoadByID(id)
	require.NoError(t, err)
	return p
}

// mustLoop traces the loop from the map's start tile.
func mustLoop(t *testing.T, m *core.TileMap) core.Loop {
	t.Helper()
	start, err := m.Start()
	require.NoError(t, err)
	loop, err := core.Trace(m, start)
	require.NoError(t, err)
	return loop
}

// The 7x7 rectangle from the engine's reference scenarios.
var rectangleRows = []string{
	".......",
	".S---7.",
	".|...|.",
	".|...|.",
	".|...|.",
	".L---J.",
	".......",
}

var squareRows = []string{
	".....",
	".S-7.",
	".|.|.",
	".L-J.",
	".....",
}

// fixtureIDs lists every well-formed puzzle in testdata.
var fixtureIDs = []string{"rectangle", "square", "winding", "channel", "squeeze", "sparse", "tangle"}
