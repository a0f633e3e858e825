package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLPuzzle represents the YAML structure for a puzzle file.
type YAMLPuzzle struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Grid     string            `yaml:"grid"`
	Expect   YAMLExpect        `yaml:"expect,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLExpect holds the known answers for a puzzle.
type YAMLExpect struct {
	Farthest int `yaml:"farthest,omitempty"`
	Enclosed int `yaml:"enclosed,omitempty"`
}

// ParseYAML parses a YAML puzzle file. fallbackID is used when the file has no id.
func ParseYAML(fallbackID string, data []byte) (Puzzle, error) {
	var yp YAMLPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Puzzle{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	m, err := ParseGrid(SplitRows(yp.Grid))
	if err != nil {
		return Puzzle{}, err
	}

	id := yp.ID
	if id == "" {
		id = fallbackID
	}
	name := yp.Name
	if name == "" {
		name = id
	}

	return Puzzle{
		ID:   id,
		Name: name,
		Map:  m,
		Expect: Expect{
			Farthest: yp.Expect.Farthest,
			Enclosed: yp.Expect.Enclosed,
		},
		Metadata: yp.Metadata,
	}, nil
}
