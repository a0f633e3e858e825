package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
)

func TestDirOpposite(t *testing.T) {
	testCases := []struct {
		dir      core.Dir
		expected core.Dir
	}{
		{core.DirNorth, core.DirSouth},
		{core.DirEast, core.DirWest},
		{core.DirSouth, core.DirNorth},
		{core.DirWest, core.DirEast},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.dir.Opposite(), "Opposite(%v)", tc.dir)
		assert.Equal(t, tc.dir, tc.dir.Opposite().Opposite())
	}
}

func TestDirDeltaStepsBack(t *testing.T) {
	origin := core.C(3, 3)
	for _, d := range core.AllDirs {
		next := origin.Step(d)
		assert.Equal(t, 1, origin.Manhattan(next), "step %v", d)
		assert.Equal(t, origin, next.Step(d.Opposite()), "step %v and back", d)
	}
}

func TestTileConnects(t *testing.T) {
	testCases := []struct {
		tile core.Tile
		open []core.Dir
	}{
		{core.TileVertical, []core.Dir{core.DirNorth, core.DirSouth}},
		{core.TileHorizontal, []core.Dir{core.DirEast, core.DirWest}},
		{core.TileNorthEast, []core.Dir{core.DirNorth, core.DirEast}},
		{core.TileNorthWest, []core.Dir{core.DirNorth, core.DirWest}},
		{core.TileSouthWest, []core.Dir{core.DirSouth, core.DirWest}},
		{core.TileSouthEast, []core.Dir{core.DirEast, core.DirSouth}},
		{core.TileGround, nil},
		{core.TileStart, core.AllDirs[:]},
	}

	for _, tc := range testCases {
		var got []core.Dir
		for _, d := range core.AllDirs {
			if tc.tile.Connects(d) {
				got = append(got, d)
			}
		}
		assert.ElementsMatch(t, tc.open, got, "tile %v", tc.tile)
	}
}

func TestPipesOpenExactlyTwoWays(t *testing.T) {
	for _, r := range "|-LJ7F" {
		tile, ok := core.ParseTile(r)
		assert.True(t, ok)
		assert.True(t, tile.IsPipe())

		open := 0
		for _, d := range core.AllDirs {
			if tile.Connects(d) {
				open++
			}
		}
		assert.Equal(t, 2, open, "tile %q", r)
	}
}

func TestParseTileRoundTrip(t *testing.T) {
	for _, r := range "|-LJ7F.S" {
		tile, ok := core.ParseTile(r)
		assert.True(t, ok, "glyph %q", r)
		assert.Equal(t, r, tile.Char())
	}

	_, ok := core.ParseTile('X')
	assert.False(t, ok)
}

func TestTileFor(t *testing.T) {
	tile, ok := core.TileFor(core.DirSouth, core.DirEast)
	assert.True(t, ok)
	assert.Equal(t, core.TileSouthEast, tile)

	_, ok = core.TileFor(core.DirNorth, core.DirNorth)
	assert.False(t, ok)
}
