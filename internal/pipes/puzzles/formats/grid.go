// Package formats provides pluggable puzzle file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
)

var (
	// ErrEmptyGrid indicates the puzzle has no rows or no columns.
	ErrEmptyGrid = errors.New("formats: grid must have at least one row and one column")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("formats: all rows must have the same length")
)

// ParseError reports a character that is not a known tile glyph.
type ParseError struct {
	Line   int // 1-based row
	Column int // 1-based column
	Char   rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("formats: unknown tile %q at line %d, column %d", e.Char, e.Line, e.Column)
}

// Puzzle is a parsed puzzle ready for analysis.
type Puzzle struct {
	ID       string
	Name     string
	Map      *core.TileMap
	Expect   Expect
	Metadata map[string]string
}

// Expect holds optional known answers. Zero means unknown.
type Expect struct {
	Farthest int
	Enclosed int
}

// SplitRows splits a grid block into rows, dropping blank leading and
// trailing lines and tolerating CRLF line endings.
func SplitRows(block string) []string {
	lines := strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.TrimRight(line, " \t\r"))
	}
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// ParseGrid maps rows of tile glyphs onto a tile map.
func ParseGrid(rows []string) (*core.TileMap, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}

	w := utf8.RuneCountInString(rows[0])
	tiles := make([]core.Tile, 0, w*len(rows))
	for y, row := range rows {
		if utf8.RuneCountInString(row) != w {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d",
				ErrRaggedRows, y+1, utf8.RuneCountInString(row), w)
		}
		x := 0
		for _, r := range row {
			t, ok := core.ParseTile(r)
			if !ok {
				return nil, &ParseError{Line: y + 1, Column: x + 1, Char: r}
			}
			tiles = append(tiles, t)
			x++
		}
	}

	return core.NewTileMap(w, len(rows), tiles)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".yaml", ".yml"}
}
