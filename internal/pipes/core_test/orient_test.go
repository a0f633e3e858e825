package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
)

func TestTurnBetween(t *testing.T) {
	right := [][2]core.Dir{
		{core.DirEast, core.DirSouth},
		{core.DirSouth, core.DirWest},
		{core.DirWest, core.DirNorth},
		{core.DirNorth, core.DirEast},
	}
	left := [][2]core.Dir{
		{core.DirNorth, core.DirWest},
		{core.DirEast, core.DirNorth},
		{core.DirSouth, core.DirEast},
		{core.DirWest, core.DirSouth},
	}

	for _, p := range right {
		assert.Equal(t, core.TurnRight, core.TurnBetween(p[0], p[1]), "%v->%v", p[0], p[1])
		// Walking the same corner backwards turns the other way.
		assert.Equal(t, core.TurnLeft, core.TurnBetween(p[1].Opposite(), p[0].Opposite()))
	}
	for _, p := range left {
		assert.Equal(t, core.TurnLeft, core.TurnBetween(p[0], p[1]), "%v->%v", p[0], p[1])
	}
	for _, d := range core.AllDirs {
		assert.Equal(t, core.TurnStraight, core.TurnBetween(d, d))
		assert.Equal(t, core.TurnReverse, core.TurnBetween(d, d.Opposite()))
	}
}

func TestClassifyRectangleIsClockwise(t *testing.T) {
	loop := mustLoop(t, mustMap(t, rectangleRows...))

	o, err := core.Classify(loop)
	require.NoError(t, err)
	assert.True(t, o.Clockwise)
	assert.Equal(t, 4, o.Turns)
	assert.Equal(t, "clockwise", o.String())
}

func TestClassifyTurnsAreOneRevolution(t *testing.T) {
	for _, id := range fixtureIDs {
		t.Run(id, func(t *testing.T) {
			o, err := core.Classify(mustLoop(t, mustPuzzle(t, id).Map))
			require.NoError(t, err)
			assert.Contains(t, []int{4, -4}, o.Turns)
			assert.Equal(t, o.Turns > 0, o.Clockwise)
		})
	}
}

func TestClassifySparseIsCounterClockwise(t *testing.T) {
	o, err := core.Classify(mustLoop(t, mustPuzzle(t, "sparse").Map))
	require.NoError(t, err)
	assert.False(t, o.Clockwise)
	assert.Equal(t, -4, o.Turns)
}

func TestClassifyReversedWalkFlips(t *testing.T) {
	m := mustMap(t, rectangleRows...)
	opts := core.TraceOptions{Order: [4]core.Dir{core.DirWest, core.DirSouth, core.DirEast, core.DirNorth}}
	loop, err := core.TraceWith(m, core.C(1, 1), opts)
	require.NoError(t, err)

	o, err := core.Classify(loop)
	require.NoError(t, err)
	assert.False(t, o.Clockwise)
	assert.Equal(t, -4, o.Turns)
}

func TestClassifyDegenerate(t *testing.T) {
	steps := func(dirs ...core.Dir) core.Loop {
		var l core.Loop
		c := core.C(5, 5)
		for _, d := range dirs {
			l.Steps = append(l.Steps, core.Step{From: c, Dir: d})
			c = c.Step(d)
		}
		return l
	}

	testCases := []struct {
		name string
		loop core.Loop
	}{
		{"empty", core.Loop{}},
		{"two revolutions", steps(
			core.DirEast, core.DirSouth, core.DirWest, core.DirNorth,
			core.DirEast, core.DirSouth, core.DirWest, core.DirNorth,
		)},
		{"reversal", steps(core.DirEast, core.DirWest)},
		{"figure eight", steps(
			core.DirEast, core.DirSouth, core.DirWest, core.DirNorth, core.DirNorth,
			core.DirWest, core.DirSouth, core.DirEast, core.DirSouth,
		)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.Classify(tc.loop)
			assert.True(t, errors.Is(err, core.ErrDegenerateOrientation), "got %v", err)
		})
	}
}

func TestInwardSide(t *testing.T) {
	cw := core.Orientation{Clockwise: true, Turns: 4}
	ccw := core.Orientation{Clockwise: false, Turns: -4}

	testCases := []struct {
		dir     core.Dir
		cwSide  core.Dir
		ccwSide core.Dir
	}{
		{core.DirNorth, core.DirEast, core.DirWest},
		{core.DirEast, core.DirSouth, core.DirNorth},
		{core.DirSouth, core.DirWest, core.DirEast},
		{core.DirWest, core.DirNorth, core.DirSouth},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.cwSide, core.InwardSide(tc.dir, cw), "cw %v", tc.dir)
		assert.Equal(t, tc.ccwSide, core.InwardSide(tc.dir, ccw), "ccw %v", tc.dir)
	}
}
