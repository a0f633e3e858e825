package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeloop/internal/pipes/core"
	"github.com/vovakirdan/pipeloop/internal/pipes/puzzles"
	"github.com/vovakirdan/pipeloop/internal/storage"
)

var flagNoSave bool

var solveCmd = &cobra.Command{
	Use:   "solve [file|id...]",
	Short: "Analyse puzzles",
	Long: `Trace the loop of each puzzle, report its length, the distance to the
farthest loop tile, the winding direction and the number of enclosed tiles.

Arguments may be puzzle files or IDs from the puzzle directory. With no
arguments every puzzle in the directory is solved. Puzzles are analysed in
parallel; results are printed in argument order. Known answers from YAML
puzzles are checked and mismatches reported.

Examples:
  pipeloop solve
  pipeloop solve tangle sparse
  pipeloop solve ./input.txt --no-save`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results in the history database")
}

// solveResult is the outcome of one puzzle analysis.
type solveResult struct {
	puzzle   puzzles.Puzzle
	result   core.Result
	bfs      int
	elapsed  time.Duration
	err      error
	problems []string
}

func runSolve(_ *cobra.Command, args []string) error {
	list, err := resolvePuzzles(args)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Printf("No puzzles found in %s.\n", cfg.Puzzles.Dir)
		return nil
	}

	results := solveAll(list)

	var store *storage.Store
	if !flagNoSave {
		store, err = openStore()
		if err != nil {
			logger.Warn("history disabled", "error", err)
		}
		if store != nil {
			defer store.Close()
		}
	}

	failed := 0
	for _, r := range results {
		printResult(r)
		if r.err != nil || len(r.problems) > 0 {
			failed++
			continue
		}
		if store != nil {
			rec := storage.SolveRecord{
				PuzzleID:   r.puzzle.ID,
				Source:     "cli",
				Width:      r.result.Width,
				Height:     r.result.Height,
				LoopLength: r.result.LoopLength,
				Farthest:   r.result.Farthest,
				Enclosed:   r.result.Enclosed,
				Clockwise:  r.result.Clockwise,
				Duration:   r.elapsed,
			}
			if _, err := store.SaveSolve(rec); err != nil {
				logger.Warn("could not record solve", "puzzle", r.puzzle.ID, "error", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(results))
	}
	return nil
}

// resolvePuzzles loads the puzzles named by args, or all puzzles when args is empty.
func resolvePuzzles(args []string) ([]puzzles.Puzzle, error) {
	loader := newLoader()
	if len(args) == 0 {
		return loader.LoadAll()
	}

	list := make([]puzzles.Puzzle, 0, len(args))
	for _, ref := range args {
		p, err := loader.Resolve(ref)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

// solveAll analyses every puzzle on its own goroutine.
// Results keep the order of list.
func solveAll(list []puzzles.Puzzle) []solveResult {
	results := make([]solveResult, len(list))

	var wg sync.WaitGroup
	for i, p := range list {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = solveOne(p)
		}()
	}
	wg.Wait()

	return results
}

func solveOne(p puzzles.Puzzle) solveResult {
	res := solveResult{puzzle: p}

	start := time.Now()
	res.result, res.err = core.Analyze(p.Map)
	res.elapsed = time.Since(start)
	if res.err != nil {
		logger.Debug("analysis failed", "puzzle", p.ID, "error", res.err)
		return res
	}

	// The breadth-first distance must agree with half the loop length.
	res.bfs, res.err = core.FarthestFromStart(p.Map)
	if res.err == nil && res.bfs != res.result.Farthest {
		res.problems = append(res.problems,
			fmt.Sprintf("breadth-first farthest %d disagrees with loop walk %d", res.bfs, res.result.Farthest))
	}
	res.problems = append(res.problems, p.Check(res.result)...)

	logger.Debug("analysed puzzle", "puzzle", p.ID, "loop", res.result.LoopLength, "elapsed", res.elapsed)
	return res
}

func printResult(r solveResult) {
	fmt.Printf("%s (%dx%d)\n", r.puzzle.ID, r.puzzle.Map.W, r.puzzle.Map.H)
	if r.err != nil {
		fmt.Fprintf(os.Stderr, "  error: %v\n", r.err)
		return
	}

	winding := "counter-clockwise"
	if r.result.Clockwise {
		winding = "clockwise"
	}
	fmt.Printf("  loop length: %d\n", r.result.LoopLength)
	fmt.Printf("  farthest:    %d\n", r.result.Farthest)
	fmt.Printf("  winding:     %s\n", winding)
	fmt.Printf("  enclosed:    %d\n", r.result.Enclosed)
	for _, problem := range r.problems {
		fmt.Fprintf(os.Stderr, "  mismatch: %s\n", problem)
	}
}
