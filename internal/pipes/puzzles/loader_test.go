package puzzles_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
	"github.com/vovakirdan/pipeloop/internal/pipes/puzzles"
)

// getTestdataPath returns path to testdata/puzzles.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "puzzles")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := puzzles.NewLoader(getTestdataPath())

	var skipped []string
	loader.OnSkip = func(path string, err error) {
		skipped = append(skipped, filepath.Base(path))
	}

	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(all) != 7 {
		t.Errorf("expected 7 puzzles, got %d", len(all))
	}

	// Should be sorted by ID
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("puzzles not sorted: %s >= %s", all[i-1].ID, all[i].ID)
		}
	}

	if len(skipped) != 1 || skipped[0] != "invalid.txt" {
		t.Errorf("expected invalid.txt to be skipped, got %v", skipped)
	}
}

func TestLoaderLoadText(t *testing.T) {
	loader := puzzles.NewLoader(getTestdataPath())

	p, err := loader.LoadByID("rectangle")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	// Plain files take their ID and name from the file name.
	if p.ID != "rectangle" || p.Name != "rectangle" {
		t.Errorf("expected ID and Name 'rectangle', got %q/%q", p.ID, p.Name)
	}
	if p.Map.W != 7 || p.Map.H != 7 {
		t.Errorf("expected 7x7, got %dx%d", p.Map.W, p.Map.H)
	}
	if p.Expect.Enclosed != 0 {
		t.Errorf("plain files carry no expectations, got %+v", p.Expect)
	}
	if !strings.HasSuffix(p.FilePath, "rectangle.txt") {
		t.Errorf("unexpected file path %q", p.FilePath)
	}
}

func TestLoaderLoadYAML(t *testing.T) {
	loader := puzzles.NewLoader(getTestdataPath())

	p, err := loader.LoadByID("sparse")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if p.Name != "Sparse Clutter" {
		t.Errorf("expected Name 'Sparse Clutter', got %q", p.Name)
	}
	if p.Map.W != 20 || p.Map.H != 10 {
		t.Errorf("expected 20x10, got %dx%d", p.Map.W, p.Map.H)
	}
	if p.Expect.Enclosed != 8 {
		t.Errorf("expected enclosed 8, got %d", p.Expect.Enclosed)
	}

	start, err := p.Map.Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if start != core.C(12, 4) {
		t.Errorf("expected start at (12,4), got %v", start)
	}
}

func TestLoaderNotFound(t *testing.T) {
	loader := puzzles.NewLoader(getTestdataPath())

	_, err := loader.LoadByID("nonexistent")
	if err == nil {
		t.Error("expected error for nonexistent puzzle")
	}
}

func TestLoaderLoadFileInvalid(t *testing.T) {
	loader := puzzles.NewLoader(getTestdataPath())

	_, err := loader.LoadFile(filepath.Join(getTestdataPath(), "broken", "invalid.txt"))
	if err == nil {
		t.Fatal("expected parse error for invalid.txt")
	}
	if !strings.Contains(err.Error(), "invalid.txt") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestLoaderResolve(t *testing.T) {
	loader := puzzles.NewLoader(getTestdataPath())

	byID, err := loader.Resolve("square")
	if err != nil {
		t.Fatalf("Resolve by ID failed: %v", err)
	}

	byPath, err := loader.Resolve(byID.FilePath)
	if err != nil {
		t.Fatalf("Resolve by path failed: %v", err)
	}
	if byPath.ID != "square" {
		t.Errorf("expected ID 'square', got %q", byPath.ID)
	}

	// A file outside the root resolves too.
	path := filepath.Join(t.TempDir(), "tiny.txt")
	if err := os.WriteFile(path, []byte("F7\nSJ\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tiny, err := loader.Resolve(path)
	if err != nil {
		t.Fatalf("Resolve outside root failed: %v", err)
	}
	if tiny.ID != "tiny" || tiny.Map.Size() != 4 {
		t.Errorf("unexpected puzzle %q of size %d", tiny.ID, tiny.Map.Size())
	}
}

func TestLoaderListIDs(t *testing.T) {
	loader := puzzles.NewLoader(getTestdataPath())

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}

	want := []string{"channel", "rectangle", "sparse", "square", "squeeze", "tangle", "winding"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, ids)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := puzzles.NewLoader(filepath.Join(t.TempDir(), "missing"))

	if _, err := loader.LoadAll(); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestPuzzleCheck(t *testing.T) {
	loader := puzzles.NewLoader(getTestdataPath())

	p, err := loader.LoadByID("winding")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	r, err := p.NewAnalysis().Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if problems := p.Check(r); len(problems) != 0 {
		t.Errorf("unexpected mismatches: %v", problems)
	}

	r.Farthest++
	r.Enclosed++
	if problems := p.Check(r); len(problems) != 2 {
		t.Errorf("expected 2 mismatches, got %v", problems)
	}
}
