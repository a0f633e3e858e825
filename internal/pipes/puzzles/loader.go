// Package puzzles provides puzzle loading for the pipe loop engine.
// This package depends on core but core does not depend on puzzles.
package puzzles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
	"github.com/vovakirdan/pipeloop/internal/pipes/puzzles/formats"
)

// Puzzle represents a loaded puzzle definition.
type Puzzle struct {
	formats.Puzzle
	FilePath string
}

// NewAnalysis starts an analysis of the puzzle's grid.
func (p Puzzle) NewAnalysis() *core.Analysis {
	return core.NewAnalysis(p.Map)
}

// Check compares a result against the puzzle's known answers and returns
// one message per mismatch.
func (p Puzzle) Check(r core.Result) []string {
	var problems []string
	if p.Expect.Farthest > 0 && p.Expect.Farthest != r.Farthest {
		problems = append(problems, fmt.Sprintf("farthest: got %d, want %d", r.Farthest, p.Expect.Farthest))
	}
	if p.Expect.Enclosed > 0 && p.Expect.Enclosed != r.Enclosed {
		problems = append(problems, fmt.Sprintf("enclosed: got %d, want %d", r.Enclosed, p.Expect.Enclosed))
	}
	return problems
}

// SkipFunc is told about files that LoadAll could not parse.
type SkipFunc func(path string, err error)

// Loader handles loading puzzles from a directory.
type Loader struct {
	Root string

	// OnSkip, when set, receives every file LoadAll skipped.
	OnSkip SkipFunc
}

// NewLoader creates a new puzzle loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all puzzle files.
// Returns puzzles sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Puzzle, error) {
	var puzzles []Puzzle

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		puzzle, err := l.LoadFile(path)
		if err != nil {
			if l.OnSkip != nil {
				l.OnSkip(path, err)
			}
			return nil
		}

		puzzles = append(puzzles, puzzle)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].ID < puzzles[j].ID
	})

	return puzzles, nil
}

// LoadFile loads a single puzzle file.
func (l *Loader) LoadFile(path string) (Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parsed, err := parseByExtension(id, data, ext)
	if err != nil {
		return Puzzle{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Puzzle{Puzzle: parsed, FilePath: path}, nil
}

// LoadByID loads a specific puzzle by ID.
func (l *Loader) LoadByID(id string) (Puzzle, error) {
	puzzles, err := l.LoadAll()
	if err != nil {
		return Puzzle{}, err
	}

	for _, p := range puzzles {
		if p.ID == id {
			return p, nil
		}
	}

	return Puzzle{}, fmt.Errorf("puzzle not found: %s", id)
}

// Resolve loads ref as a file path when it names an existing file and as a
// puzzle ID otherwise.
func (l *Loader) Resolve(ref string) (Puzzle, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return l.LoadFile(ref)
	}
	return l.LoadByID(ref)
}

// ListIDs returns all puzzle IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	puzzles, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(puzzles))
	for i, p := range puzzles {
		ids[i] = p.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(id string, data []byte, ext string) (formats.Puzzle, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(id, data)
	case ".txt":
		return formats.ParseText(id, data)
	default:
		return formats.Puzzle{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
