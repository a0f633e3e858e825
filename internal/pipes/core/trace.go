package core

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Step is one move of the loop walk: the cell departed and the direction taken.
type Step struct {
	From Coord
	Dir  Dir
}

// To returns the cell the step arrives at.
func (s Step) To() Coord {
	return s.From.Step(s.Dir)
}

// Loop is the closed walk from Start back to Start.
// The last step arrives at Steps[0].From.
type Loop struct {
	Steps []Step
	cells mapset.Set[Coord]
}

// Len returns the number of steps, which equals the number of loop cells.
func (l Loop) Len() int {
	return len(l.Steps)
}

// Start returns the cell the walk began at.
func (l Loop) Start() Coord {
	if len(l.Steps) == 0 {
		return Coord{}
	}
	return l.Steps[0].From
}

// Farthest returns the step count to the point of the loop farthest from Start.
func (l Loop) Farthest() int {
	return len(l.Steps) / 2
}

// Contains reports whether c is a loop cell.
func (l Loop) Contains(c Coord) bool {
	return l.cells.Has(c)
}

// Cells returns the loop cells in walk order.
func (l Loop) Cells() []Coord {
	cells := make([]Coord, len(l.Steps))
	for i, s := range l.Steps {
		cells[i] = s.From
	}
	return cells
}

// Dirs returns the direction of every step in walk order.
func (l Loop) Dirs() []Dir {
	dirs := make([]Dir, len(l.Steps))
	for i, s := range l.Steps {
		dirs[i] = s.Dir
	}
	return dirs
}

// StartTile returns the pipe shape Start must have, derived from the
// first and last steps.
func (l Loop) StartTile() Tile {
	if len(l.Steps) < 2 {
		return TileStart
	}
	out := l.Steps[0].Dir
	in := l.Steps[len(l.Steps)-1].Dir.Opposite()
	t, ok := TileFor(out, in)
	if !ok {
		return TileStart
	}
	return t
}

// TraceOptions tunes a loop walk.
type TraceOptions struct {
	// Order is the direction scan order. It only decides which way round
	// the loop is walked.
	Order [4]Dir
	// MaxSteps bounds the walk. Zero means the number of grid cells.
	MaxSteps int
}

// DefaultTraceOptions scans in AllDirs order with the grid-size bound.
func DefaultTraceOptions() TraceOptions {
	return TraceOptions{Order: AllDirs}
}

// Trace walks the loop through start with the default options.
func Trace(m *TileMap, start Coord) (Loop, error) {
	return TraceWith(m, start, DefaultTraceOptions())
}

// TraceWith walks the loop through start, recording the cell departed and
// the heading taken at every step until the walk re-enters start.
func TraceWith(m *TileMap, start Coord, opts TraceOptions) (Loop, error) {
	order := opts.Order
	if order == ([4]Dir{}) {
		order = AllDirs
	}
	if !m.InBounds(start) {
		return Loop{}, &LoopError{Err: ErrMissingStart, At: start, Detail: "start outside grid"}
	}

	// Start's shape is unknown, so count every way out of it first.
	exits := 0
	for _, d := range order {
		if _, ok := m.Linked(start, d); ok {
			exits++
		}
	}
	if exits != 2 {
		return Loop{}, &LoopError{
			Err:    ErrAmbiguousStart,
			At:     start,
			Detail: fmt.Sprintf("%d linked neighbours", exits),
		}
	}

	limit := opts.MaxSteps
	if limit <= 0 {
		limit = m.Size()
	}
	steps := make([]Step, 0, 16)
	cells := mapset.New[Coord]()
	current := start
	var prev Dir
	first := true

	for {
		if len(steps) >= limit {
			return Loop{}, &LoopError{
				Err:    ErrUnboundedTraversal,
				At:     current,
				Detail: fmt.Sprintf("exceeded %d steps", limit),
			}
		}

		next, dir, ok := nextStep(m, current, prev, first, order)
		if !ok {
			return Loop{}, &LoopError{Err: ErrDeadEnd, At: current}
		}

		steps = append(steps, Step{From: current, Dir: dir})
		cells.Put(current)
		if next == start {
			return Loop{Steps: steps, cells: cells}, nil
		}

		current = next
		prev = dir
		first = false
	}
}

// nextStep picks the first linked direction out of c that does not reverse prev.
func nextStep(m *TileMap, c Coord, prev Dir, first bool, order [4]Dir) (Coord, Dir, bool) {
	for _, d := range order {
		if !first && d == prev.Opposite() {
			continue
		}
		if n, ok := m.Linked(c, d); ok {
			return n, d, true
		}
	}
	return Coord{}, 0, false
}
