package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed puzzles. Every failure returned by the engine
// wraps exactly one of these in a *LoopError.
var (
	// ErrMissingStart indicates the grid has no Start tile.
	ErrMissingStart = errors.New("pipes: no start tile in grid")
	// ErrAmbiguousStart indicates Start does not link to exactly two neighbours.
	ErrAmbiguousStart = errors.New("pipes: start tile must link to exactly two pipes")
	// ErrDeadEnd indicates the loop walk reached a cell with no way forward.
	ErrDeadEnd = errors.New("pipes: loop walk hit a dead end")
	// ErrUnboundedTraversal indicates the walk outlasted the grid without closing.
	ErrUnboundedTraversal = errors.New("pipes: loop walk did not return to start")
	// ErrDegenerateOrientation indicates the turns do not add up to one revolution.
	ErrDegenerateOrientation = errors.New("pipes: loop turns do not form a single revolution")
)

// LoopError carries the cell at which a structural violation was detected.
type LoopError struct {
	Err    error
	At     Coord
	Detail string
}

func (e *LoopError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at %v", e.Err, e.At)
	}
	return fmt.Sprintf("%v at %v: %s", e.Err, e.At, e.Detail)
}

func (e *LoopError) Unwrap() error {
	return e.Err
}
