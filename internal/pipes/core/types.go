// Package core provides the loop tracing and enclosure engine for pipe mazes.
// This package is UI-agnostic and deterministic.
package core

// Dir represents a compass direction on the grid.
type Dir uint8

const (
	DirNorth Dir = iota
	DirEast
	DirSouth
	DirWest
)

// AllDirs is the fixed scan order used wherever neighbours are enumerated.
var AllDirs = [4]Dir{DirNorth, DirEast, DirSouth, DirWest}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNorth:
		return "North"
	case DirEast:
		return "East"
	case DirSouth:
		return "South"
	case DirWest:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirEast:
		return 1, 0
	case DirSouth:
		return 0, 1
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirNorth:
		return DirSouth
	case DirEast:
		return DirWest
	case DirSouth:
		return DirNorth
	case DirWest:
		return DirEast
	default:
		return d
	}
}

// Tile is the pipe segment occupying a grid cell.
type Tile uint8

const (
	TileGround Tile = iota
	TileVertical
	TileHorizontal
	TileNorthEast
	TileNorthWest
	TileSouthWest
	TileSouthEast
	TileStart

	tileCount
)

// connections[t][d] reports whether tile t opens towards d.
// Start opens everywhere; its real shape is inferred while tracing.
var connections = [tileCount][4]bool{
	//              N      E      S      W
	TileGround:     {false, false, false, false},
	TileVertical:   {true, false, true, false},
	TileHorizontal: {false, true, false, true},
	TileNorthEast:  {true, true, false, false},
	TileNorthWest:  {true, false, false, true},
	TileSouthWest:  {false, false, true, true},
	TileSouthEast:  {false, true, true, false},
	TileStart:      {true, true, true, true},
}

// Connects returns true if a pipe of this tile permits travel towards d.
func (t Tile) Connects(d Dir) bool {
	if t >= tileCount || d > DirWest {
		return false
	}
	return connections[t][d]
}

// IsPipe returns true for the six fixed pipe segments.
func (t Tile) IsPipe() bool {
	return t != TileGround && t != TileStart && t < tileCount
}

// glyphs holds the puzzle-file character of each tile.
var glyphs = [tileCount]rune{
	TileGround:     '.',
	TileVertical:   '|',
	TileHorizontal: '-',
	TileNorthEast:  'L',
	TileNorthWest:  'J',
	TileSouthWest:  '7',
	TileSouthEast:  'F',
	TileStart:      'S',
}

// boxGlyphs holds box-drawing equivalents used by the pretty renderers.
var boxGlyphs = [tileCount]rune{
	TileGround:     '.',
	TileVertical:   '│',
	TileHorizontal: '─',
	TileNorthEast:  '└',
	TileNorthWest:  '┘',
	TileSouthWest:  '┐',
	TileSouthEast:  '┌',
	TileStart:      'S',
}

// Char returns the puzzle-file character for the tile.
func (t Tile) Char() rune {
	if t >= tileCount {
		return '?'
	}
	return glyphs[t]
}

// BoxChar returns the box-drawing character for the tile.
func (t Tile) BoxChar() rune {
	if t >= tileCount {
		return '?'
	}
	return boxGlyphs[t]
}

// ParseTile maps a puzzle-file character to its tile.
func ParseTile(r rune) (Tile, bool) {
	switch r {
	case '|':
		return TileVertical, true
	case '-':
		return TileHorizontal, true
	case 'L':
		return TileNorthEast, true
	case 'J':
		return TileNorthWest, true
	case '7':
		return TileSouthWest, true
	case 'F':
		return TileSouthEast, true
	case '.':
		return TileGround, true
	case 'S':
		return TileStart, true
	default:
		return TileGround, false
	}
}

// TileFor returns the pipe tile that connects exactly the two given directions.
func TileFor(a, b Dir) (Tile, bool) {
	for t := TileVertical; t <= TileSouthEast; t++ {
		if a != b && t.Connects(a) && t.Connects(b) {
			return t, true
		}
	}
	return TileGround, false
}

// String returns the string representation of a tile.
func (t Tile) String() string {
	switch t {
	case TileGround:
		return "Ground"
	case TileVertical:
		return "Vertical"
	case TileHorizontal:
		return "Horizontal"
	case TileNorthEast:
		return "NorthEast"
	case TileNorthWest:
		return "NorthWest"
	case TileSouthWest:
		return "SouthWest"
	case TileSouthEast:
		return "SouthEast"
	case TileStart:
		return "Start"
	default:
		return "Unknown"
	}
}
