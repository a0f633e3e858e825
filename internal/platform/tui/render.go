package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
)

// RenderAnalysis draws the grid at the analysis' current stage with theme colors.
// Adjacent cells of the same kind share one styled run to keep ANSI output small.
func RenderAnalysis(a *core.Analysis, opts core.RenderOptions, theme Theme) string {
	var sb strings.Builder
	m := a.Map
	sb.Grow(m.W*m.H*2 + m.H)

	for y := range m.H {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < m.W {
			kind := a.Kind(core.C(x, y))

			var run strings.Builder
			for x < m.W {
				c := core.C(x, y)
				if a.Kind(c) != kind {
					break
				}
				run.WriteRune(a.Glyph(c, opts))
				x++
			}

			sb.WriteString(theme.CellStyle(kind).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
