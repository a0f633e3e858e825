package formats

// ParseText parses a plain puzzle file: one grid row per line.
// The caller supplies the ID, usually the file's base name.
func ParseText(id string, data []byte) (Puzzle, error) {
	m, err := ParseGrid(SplitRows(string(data)))
	if err != nil {
		return Puzzle{}, err
	}
	return Puzzle{
		ID:   id,
		Name: id,
		Map:  m,
	}, nil
}
