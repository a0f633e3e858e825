package core

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Region is a set of grid cells.
type Region struct {
	cells mapset.Set[Coord]
}

// NewRegion creates a region holding the given cells.
func NewRegion(coords ...Coord) Region {
	r := Region{cells: mapset.New[Coord]()}
	for _, c := range coords {
		r.cells.Put(c)
	}
	return r
}

// Len returns the number of cells in the region.
func (r Region) Len() int {
	return r.cells.Size()
}

// Contains reports whether c belongs to the region.
func (r Region) Contains(c Coord) bool {
	return r.cells.Has(c)
}

// Coords returns the region's cells ordered by row then column.
func (r Region) Coords() []Coord {
	coords := make([]Coord, 0, r.cells.Size())
	r.cells.Each(func(c Coord) {
		coords = append(coords, c)
	})
	SortCoords(coords)
	return coords
}

// Equal returns true if both regions hold the same cells.
func (r Region) Equal(other Region) bool {
	if r.Len() != other.Len() {
		return false
	}
	equal := true
	r.cells.Each(func(c Coord) {
		if !other.Contains(c) {
			equal = false
		}
	})
	return equal
}

// Fill spreads from seeds across 4-connected cells without entering a loop
// cell and returns every cell reached. Seeds on the loop or off the grid are
// ignored.
//
// Time:   O(W·H).
// Memory: O(W·H) for the visited set and worklist.
func Fill(m *TileMap, seeds []Coord, l Loop) Region {
	region := NewRegion()
	work := queue.New[Coord]()

	for _, s := range seeds {
		if !m.InBounds(s) || l.Contains(s) || region.Contains(s) {
			continue
		}
		region.cells.Put(s)
		work.Enqueue(s)
	}

	for !work.Empty() {
		c := work.Dequeue()
		for _, d := range AllDirs {
			n, ok := m.Neighbor(c, d)
			if !ok || l.Contains(n) || region.Contains(n) {
				continue
			}
			region.cells.Put(n)
			work.Enqueue(n)
		}
	}
	return region
}
