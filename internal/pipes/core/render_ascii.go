package core

import (
	"fmt"
	"strings"
)

// CellKind is how a cell is shown at the analysis' current stage.
type CellKind uint8

const (
	KindGround   CellKind = iota // Ground, or anything not yet classified
	KindJunk                     // Pipe that is not part of the loop
	KindLoop                     // Loop pipe
	KindStart                    // The Start cell
	KindSeed                     // Interior seed found by the boundary scan
	KindInterior                 // Enclosed by the loop
	KindExterior                 // Outside the loop
)

// Kind classifies c for display. Before tracing every pipe is junk; later
// stages refine the picture as their results become available.
func (a *Analysis) Kind(c Coord) CellKind {
	t := a.Map.Get(c)
	if t == TileStart {
		return KindStart
	}
	if a.stage < StageTraced {
		if t == TileGround {
			return KindGround
		}
		return KindJunk
	}
	if a.loop.Contains(c) {
		return KindLoop
	}
	if a.stage >= StageFilled {
		if a.interior.Contains(c) {
			return KindInterior
		}
		return KindExterior
	}
	if a.stage >= StageSeeded && a.seedSet.Contains(c) {
		return KindSeed
	}
	if t == TileGround {
		return KindGround
	}
	return KindJunk
}

// RenderOptions controls the ASCII diagnostic view.
type RenderOptions struct {
	BoxGlyphs bool // Draw pipes with box-drawing characters
	Interior  rune // Marker for enclosed cells
	Seed      rune // Marker for seed cells
	Exterior  rune // Marker for cells outside the loop
}

// DefaultRenderOptions returns the plain-ASCII view settings.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Interior: 'I',
		Seed:     '*',
		Exterior: '.',
	}
}

// Glyph returns the character drawn for c.
func (a *Analysis) Glyph(c Coord, opts RenderOptions) rune {
	t := a.Map.Get(c)
	pipe := func(t Tile) rune {
		if opts.BoxGlyphs {
			return t.BoxChar()
		}
		return t.Char()
	}

	switch a.Kind(c) {
	case KindStart:
		if opts.BoxGlyphs && a.stage >= StageTraced {
			return a.loop.StartTile().BoxChar()
		}
		return 'S'
	case KindLoop:
		return pipe(t)
	case KindJunk:
		if a.stage >= StageTraced {
			return '.'
		}
		return pipe(t)
	case KindSeed:
		return opts.Seed
	case KindInterior:
		return opts.Interior
	case KindExterior:
		return opts.Exterior
	default:
		return '.'
	}
}

// RenderGrid renders just the grid for the current stage.
func RenderGrid(a *Analysis, opts RenderOptions) string {
	var sb strings.Builder
	for y := 0; y < a.Map.H; y++ {
		for x := 0; x < a.Map.W; x++ {
			sb.WriteRune(a.Glyph(C(x, y), opts))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderASCII renders a status header followed by the grid.
// This is used for debugging, golden outputs in tests and the render command.
func RenderASCII(a *Analysis, opts RenderOptions) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Stage: %s | Size: %dx%d", a.stage, a.Map.W, a.Map.H))
	if a.stage >= StageTraced {
		sb.WriteString(fmt.Sprintf(" | Loop: %d | Farthest: %d", a.loop.Len(), a.loop.Farthest()))
	}
	if a.stage >= StageOriented {
		sb.WriteString(fmt.Sprintf(" | %s", a.orientation))
	}
	if a.stage >= StageSeeded {
		sb.WriteString(fmt.Sprintf(" | Seeds: %d", len(a.seeds)))
	}
	if a.stage >= StageFilled {
		sb.WriteString(fmt.Sprintf(" | Enclosed: %d", a.interior.Len()))
	}
	if a.err != nil {
		sb.WriteString(fmt.Sprintf(" | Error: %v", a.err))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", a.Map.W) + "\n")
	sb.WriteString(RenderGrid(a, opts))

	return sb.String()
}
