package core

import "fmt"

// TileMap is the rectangular pipe grid. Tiles are stored in row-major order:
// index = y*W + x. A TileMap is never modified after NewTileMap returns.
type TileMap struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Tiles []Tile // Flat array of tiles, length W*H
}

// NewTileMap creates a tile map of the given dimensions.
// The tiles slice is copied.
func NewTileMap(w, h int, tiles []Tile) (*TileMap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("tile map must be at least 1x1, got %dx%d", w, h)
	}
	if len(tiles) != w*h {
		return nil, fmt.Errorf("tile map %dx%d needs %d tiles, got %d", w, h, w*h, len(tiles))
	}
	owned := make([]Tile, len(tiles))
	copy(owned, tiles)
	return &TileMap{W: w, H: h, Tiles: owned}, nil
}

// index converts a coordinate to a flat array index.
func (m *TileMap) index(c Coord) int {
	return c.Y*m.W + c.X
}

// coord converts a flat array index back to a coordinate.
func (m *TileMap) coord(i int) Coord {
	return C(i%m.W, i/m.W)
}

// Size returns the total number of cells.
func (m *TileMap) Size() int {
	return m.W * m.H
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (m *TileMap) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.W && c.Y >= 0 && c.Y < m.H
}

// Get returns the tile at the given coordinate.
// Returns Ground if out of bounds.
func (m *TileMap) Get(c Coord) Tile {
	if !m.InBounds(c) {
		return TileGround
	}
	return m.Tiles[m.index(c)]
}

// Neighbor returns the adjacent coordinate in direction d, or false at the edge.
func (m *TileMap) Neighbor(c Coord, d Dir) (Coord, bool) {
	n := c.Step(d)
	if !m.InBounds(n) {
		return Coord{}, false
	}
	return n, true
}

// Linked returns the neighbour in direction d when both pipes open towards
// each other.
func (m *TileMap) Linked(c Coord, d Dir) (Coord, bool) {
	if !m.Get(c).Connects(d) {
		return Coord{}, false
	}
	n, ok := m.Neighbor(c, d)
	if !ok || !m.Get(n).Connects(d.Opposite()) {
		return Coord{}, false
	}
	return n, true
}

// Start locates the single Start tile.
func (m *TileMap) Start() (Coord, error) {
	found := -1
	for i, t := range m.Tiles {
		if t != TileStart {
			continue
		}
		if found >= 0 {
			return Coord{}, &LoopError{
				Err:    ErrAmbiguousStart,
				At:     m.coord(i),
				Detail: fmt.Sprintf("second start tile, first at %v", m.coord(found)),
			}
		}
		found = i
	}
	if found < 0 {
		return Coord{}, &LoopError{Err: ErrMissingStart}
	}
	return m.coord(found), nil
}

// AllCoords returns all coordinates in the grid, ordered by row then column.
func (m *TileMap) AllCoords() []Coord {
	coords := make([]Coord, 0, m.W*m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// Rows returns the puzzle-file representation of the grid.
func (m *TileMap) Rows() []string {
	rows := make([]string, m.H)
	line := make([]rune, m.W)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			line[x] = m.Tiles[y*m.W+x].Char()
		}
		rows[y] = string(line)
	}
	return rows
}

// CountPipes returns the number of non-ground tiles, Start included.
func (m *TileMap) CountPipes() int {
	count := 0
	for _, t := range m.Tiles {
		if t != TileGround {
			count++
		}
	}
	return count
}
