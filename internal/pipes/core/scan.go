package core

import "github.com/zyedidia/generic/mapset"

// inward[dir][clockwise] is the side of a step that faces the loop interior.
// Clockwise loops keep the interior on the right, counter-clockwise on the left.
var inward = [4][2]Dir{
	//         ccw      cw
	DirNorth: {DirWest, DirEast},
	DirEast:  {DirNorth, DirSouth},
	DirSouth: {DirEast, DirWest},
	DirWest:  {DirSouth, DirNorth},
}

// InwardSide returns the side of a step heading d that faces the interior.
func InwardSide(d Dir, o Orientation) Dir {
	side := 0
	if o.Clockwise {
		side = 1
	}
	return inward[d][side]
}

// Seeds collects the non-loop cells directly on the interior side of the loop.
// Each step tags the cell on its inward side; where the heading changed on
// arrival, the inward side of the arriving heading is tagged too, which covers
// the outer corner cells of concave bends. Seeds are returned de-duplicated in
// discovery order.
func Seeds(m *TileMap, l Loop, o Orientation) []Coord {
	n := len(l.Steps)
	seen := mapset.New[Coord]()
	seeds := make([]Coord, 0, n)

	tag := func(c Coord, d Dir) {
		nb, ok := m.Neighbor(c, InwardSide(d, o))
		if !ok || l.Contains(nb) || seen.Has(nb) {
			return
		}
		seen.Put(nb)
		seeds = append(seeds, nb)
	}

	for i, step := range l.Steps {
		tag(step.From, step.Dir)

		arrived := l.Steps[(i+n-1)%n].Dir
		if arrived != step.Dir {
			tag(step.From, arrived)
		}
	}
	return seeds
}
