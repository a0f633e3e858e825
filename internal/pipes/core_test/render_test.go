package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
)

func TestRenderASCIIStages(t *testing.T) {
	a := core.NewAnalysis(mustMap(t, squareRows...))
	opts := core.DefaultRenderOptions()

	expected := "Stage: Unparsed | Size: 5x5\n" +
		"-----\n" +
		strings.Join(squareRows, "\n") + "\n"
	assert.Equal(t, expected, core.RenderASCII(a, opts))

	require.NoError(t, a.RunTo(core.StageSeeded))
	expected = "Stage: Seeded | Size: 5x5 | Loop: 8 | Farthest: 4 | clockwise | Seeds: 1\n" +
		"-----\n" +
		".....\n" +
		".S-7.\n" +
		".|*|.\n" +
		".L-J.\n" +
		".....\n"
	assert.Equal(t, expected, core.RenderASCII(a, opts))

	require.NoError(t, a.Run())
	expected = "Stage: Filled | Size: 5x5 | Loop: 8 | Farthest: 4 | clockwise | Seeds: 1 | Enclosed: 1\n" +
		"-----\n" +
		".....\n" +
		".S-7.\n" +
		".|I|.\n" +
		".L-J.\n" +
		".....\n"
	assert.Equal(t, expected, core.RenderASCII(a, opts))
}

func TestRenderGridBoxGlyphs(t *testing.T) {
	a := core.NewAnalysis(mustMap(t, squareRows...))
	require.NoError(t, a.Run())

	opts := core.DefaultRenderOptions()
	opts.BoxGlyphs = true
	opts.Exterior = ' '

	expected := "     \n" +
		" ┌─┐ \n" +
		" │I│ \n" +
		" └─┘ \n" +
		"     \n"
	assert.Equal(t, expected, core.RenderGrid(a, opts))
}

func TestRenderHidesJunkOnceTraced(t *testing.T) {
	a := mustPuzzle(t, "tangle").NewAnalysis()
	opts := core.DefaultRenderOptions()

	assert.Equal(t, 'F', a.Glyph(core.C(0, 0), opts))
	assert.Equal(t, core.KindJunk, a.Kind(core.C(0, 0)))

	_, err := a.Advance()
	require.NoError(t, err)
	assert.Equal(t, '.', a.Glyph(core.C(0, 0), opts))
	assert.Equal(t, core.KindStart, a.Kind(core.C(4, 0)))
	assert.Equal(t, core.KindLoop, a.Kind(core.C(4, 1)))
}

func TestRenderASCIIShowsError(t *testing.T) {
	a := core.NewAnalysis(mustMap(t, "S-."))
	_, err := a.Advance()
	require.Error(t, err)

	out := core.RenderASCII(a, core.DefaultRenderOptions())
	first := strings.SplitN(out, "\n", 2)[0]
	assert.True(t, strings.HasPrefix(first, "Stage: Unparsed | Size: 3x1 | Error: "), first)
	assert.Contains(t, first, "exactly two")
}
