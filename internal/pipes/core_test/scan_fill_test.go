package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
)

func TestSeedsRectangle(t *testing.T) {
	m := mustMap(t, rectangleRows...)
	loop := mustLoop(t, m)
	o, err := core.Classify(loop)
	require.NoError(t, err)

	seeds := core.Seeds(m, loop, o)
	assert.Len(t, seeds, 8)

	// Every seed lies inside the 3x3 hole.
	for _, s := range seeds {
		assert.True(t, s.X >= 2 && s.X <= 4 && s.Y >= 2 && s.Y <= 4, "seed %v outside hole", s)
	}
}

func TestSeedsAreOffLoopAndUnique(t *testing.T) {
	for _, id := range fixtureIDs {
		t.Run(id, func(t *testing.T) {
			m := mustPuzzle(t, id).Map
			loop := mustLoop(t, m)
			o, err := core.Classify(loop)
			require.NoError(t, err)

			seen := make(map[core.Coord]bool)
			for _, s := range core.Seeds(m, loop, o) {
				assert.False(t, loop.Contains(s), "seed %v on loop", s)
				assert.False(t, seen[s], "seed %v repeated", s)
				assert.True(t, m.InBounds(s))
				seen[s] = true
			}
		})
	}
}

func TestFillRectangle(t *testing.T) {
	m := mustMap(t, rectangleRows...)
	loop := mustLoop(t, m)

	region := core.Fill(m, []core.Coord{core.C(3, 3)}, loop)
	assert.Equal(t, 9, region.Len())

	var hole []core.Coord
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			hole = append(hole, core.C(x, y))
		}
	}
	assert.Equal(t, hole, region.Coords())
}

func TestFillIgnoresLoopAndOutOfBoundsSeeds(t *testing.T) {
	m := mustMap(t, rectangleRows...)
	loop := mustLoop(t, m)

	region := core.Fill(m, []core.Coord{core.C(1, 1), core.C(-1, 0), core.C(7, 7)}, loop)
	assert.Zero(t, region.Len())
}

func TestFillIsIdempotent(t *testing.T) {
	for _, id := range fixtureIDs {
		t.Run(id, func(t *testing.T) {
			a := mustPuzzle(t, id).NewAnalysis()
			interior, err := a.Interior()
			require.NoError(t, err)
			loop, err := a.Loop()
			require.NoError(t, err)

			again := core.Fill(a.Map, interior.Coords(), loop)
			assert.True(t, again.Equal(interior))
		})
	}
}

func TestFillNeverEntersLoop(t *testing.T) {
	for _, id := range fixtureIDs {
		t.Run(id, func(t *testing.T) {
			a := mustPuzzle(t, id).NewAnalysis()
			interior, err := a.Interior()
			require.NoError(t, err)
			loop, err := a.Loop()
			require.NoError(t, err)

			for _, c := range interior.Coords() {
				assert.False(t, loop.Contains(c), "interior cell %v on loop", c)
			}
		})
	}
}

func TestPartitionCoversGrid(t *testing.T) {
	for _, id := range fixtureIDs {
		t.Run(id, func(t *testing.T) {
			a := mustPuzzle(t, id).NewAnalysis()
			interior, err := a.Interior()
			require.NoError(t, err)
			exterior, err := a.Exterior()
			require.NoError(t, err)
			loop, err := a.Loop()
			require.NoError(t, err)

			assert.Equal(t, a.Map.Size(), interior.Len()+exterior.Len()+loop.Len())
			for _, c := range a.Map.AllCoords() {
				n := 0
				if interior.Contains(c) {
					n++
				}
				if exterior.Contains(c) {
					n++
				}
				if loop.Contains(c) {
					n++
				}
				assert.Equal(t, 1, n, "cell %v", c)
			}
		})
	}
}

func TestRegionEqual(t *testing.T) {
	a := core.NewRegion(core.C(0, 0), core.C(1, 0))
	b := core.NewRegion(core.C(1, 0), core.C(0, 0), core.C(0, 0))
	c := core.NewRegion(core.C(0, 0), core.C(2, 0))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(core.NewRegion()))
}
