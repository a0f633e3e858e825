package formats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
)

func TestSplitRows(t *testing.T) {
	testCases := []struct {
		name     string
		block    string
		expected []string
	}{
		{"plain", "S7\nLJ", []string{"S7", "LJ"}},
		{"crlf", "S7\r\nLJ\r\n", []string{"S7", "LJ"}},
		{"blank edges", "\n\nS7\nLJ\n\n", []string{"S7", "LJ"}},
		{"trailing spaces", "S7  \nLJ\t\n", []string{"S7", "LJ"}},
		{"empty", "\n \n", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SplitRows(tc.block))
		})
	}
}

func TestParseGrid(t *testing.T) {
	m, err := ParseGrid([]string{"F7.", "SJ."})
	require.NoError(t, err)

	assert.Equal(t, 3, m.W)
	assert.Equal(t, 2, m.H)
	assert.Equal(t, core.TileSouthEast, m.Get(core.C(0, 0)))
	assert.Equal(t, core.TileStart, m.Get(core.C(0, 1)))
	assert.Equal(t, core.TileGround, m.Get(core.C(2, 1)))
}

func TestParseGridErrors(t *testing.T) {
	_, err := ParseGrid(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = ParseGrid([]string{""})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = ParseGrid([]string{"S7", "L"})
	assert.ErrorIs(t, err, ErrRaggedRows)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ParseGrid([]string{"S7", "LX"})
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 2, pe.Column)
	assert.Equal(t, 'X', pe.Char)
}

func TestParseText(t *testing.T) {
	p, err := ParseText("tiny", []byte("F7\r\nSJ\r\n"))
	require.NoError(t, err)

	assert.Equal(t, "tiny", p.ID)
	assert.Equal(t, "tiny", p.Name)
	assert.Equal(t, 4, p.Map.Size())
	assert.Zero(t, p.Expect)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: ring
name: Ring
grid: |
  .....
  .S-7.
  .|.|.
  .L-J.
  .....
expect:
  farthest: 4
  enclosed: 1
metadata:
  author: test
`)

	p, err := ParseYAML("fallback", data)
	require.NoError(t, err)

	assert.Equal(t, "ring", p.ID)
	assert.Equal(t, "Ring", p.Name)
	assert.Equal(t, Expect{Farthest: 4, Enclosed: 1}, p.Expect)
	assert.Equal(t, "test", p.Metadata["author"])
	assert.Equal(t, []string{".....", ".S-7.", ".|.|.", ".L-J.", "....."}, p.Map.Rows())
}

func TestParseYAMLFallbackID(t *testing.T) {
	p, err := ParseYAML("fallback", []byte("grid: |\n  F7\n  SJ\n"))
	require.NoError(t, err)

	assert.Equal(t, "fallback", p.ID)
	assert.Equal(t, "fallback", p.Name)
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := ParseYAML("x", []byte("grid: [unclosed"))
	assert.Error(t, err)

	_, err = ParseYAML("x", []byte("id: empty\n"))
	assert.ErrorIs(t, err, ErrEmptyGrid)
}
