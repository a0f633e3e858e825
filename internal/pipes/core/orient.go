package core

import "fmt"

// Turn classifies the change between two consecutive step directions.
type Turn int8

const (
	TurnStraight Turn = iota
	TurnRight
	TurnLeft
	TurnReverse
)

// String returns the string representation of a turn.
func (t Turn) String() string {
	switch t {
	case TurnStraight:
		return "Straight"
	case TurnRight:
		return "Right"
	case TurnLeft:
		return "Left"
	case TurnReverse:
		return "Reverse"
	default:
		return "Unknown"
	}
}

// turns[from][to] in screen coordinates, where North is up.
var turns = [4][4]Turn{
	DirNorth: {DirNorth: TurnStraight, DirEast: TurnRight, DirSouth: TurnReverse, DirWest: TurnLeft},
	DirEast:  {DirNorth: TurnLeft, DirEast: TurnStraight, DirSouth: TurnRight, DirWest: TurnReverse},
	DirSouth: {DirNorth: TurnReverse, DirEast: TurnLeft, DirSouth: TurnStraight, DirWest: TurnRight},
	DirWest:  {DirNorth: TurnRight, DirEast: TurnReverse, DirSouth: TurnLeft, DirWest: TurnStraight},
}

// TurnBetween returns the turn taken when heading changes from one direction
// to another.
func TurnBetween(from, to Dir) Turn {
	if from > DirWest || to > DirWest {
		return TurnReverse
	}
	return turns[from][to]
}

// Orientation records which way round the loop was walked.
type Orientation struct {
	Clockwise bool
	Turns     int // right turns minus left turns, +4 or -4 for a simple loop
}

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	if o.Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

// Classify sums the turns of the loop, wrap-around included, and decides
// its orientation.
func Classify(l Loop) (Orientation, error) {
	n := len(l.Steps)
	if n == 0 {
		return Orientation{}, &LoopError{Err: ErrDegenerateOrientation, Detail: "empty loop"}
	}

	sum := 0
	for i := 0; i < n; i++ {
		prev := l.Steps[(i+n-1)%n]
		cur := l.Steps[i]
		switch TurnBetween(prev.Dir, cur.Dir) {
		case TurnRight:
			sum++
		case TurnLeft:
			sum--
		case TurnReverse:
			return Orientation{}, &LoopError{
				Err:    ErrDegenerateOrientation,
				At:     cur.From,
				Detail: fmt.Sprintf("reversal %v->%v", prev.Dir, cur.Dir),
			}
		}
	}

	if sum != 4 && sum != -4 {
		return Orientation{}, &LoopError{
			Err:    ErrDegenerateOrientation,
			At:     l.Start(),
			Detail: fmt.Sprintf("turn sum %d", sum),
		}
	}
	return Orientation{Clockwise: sum > 0, Turns: sum}, nil
}
