package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeloop/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show recorded solves",
	Long: `Display recent solves from the history database, newest first.

With a puzzle ID only that puzzle's solves are shown, followed by its
statistics. Without one, the most recent solves of all puzzles are listed
together with a per-puzzle summary.

Examples:
  pipeloop history
  pipeloop history tangle --limit 5
  pipeloop history tangle --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of solves to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded solves instead of listing them")
}

func runHistory(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	if store == nil {
		return errors.New("history is disabled (storage.enabled is false)")
	}
	defer store.Close()

	puzzleID := ""
	if len(args) == 1 {
		puzzleID = args[0]
	}

	if flagClear {
		if puzzleID == "" {
			return errors.New("--clear needs a puzzle ID")
		}
		if err := store.ClearSolves(puzzleID); err != nil {
			return err
		}
		logger.Info("cleared history", "puzzle", puzzleID)
		return nil
	}

	solves, err := store.RecentSolves(puzzleID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving solves: %w", err)
	}

	if puzzleID != "" {
		fmt.Printf("Solves - %s\n", puzzleID)
	} else {
		fmt.Println("Recent solves")
	}
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pipeloop solve' to record some.")
		return nil
	}

	printSolves(solves)
	fmt.Println()

	if puzzleID != "" {
		stats, err := store.Stats(puzzleID)
		if err != nil {
			return err
		}
		printStats([]*storage.PuzzleStats{stats})
		return nil
	}

	all, err := store.AllStats()
	if err != nil {
		return err
	}
	list := make([]*storage.PuzzleStats, 0, len(all))
	for _, s := range all {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PuzzleID < list[j].PuzzleID })
	printStats(list)
	return nil
}

func printSolves(solves []storage.SolveRecord) {
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %-8s  %-4s  %-10s  %s\n",
		"Puzzle", "Source", "Loop", "Farthest", "Enclosed", "Dir", "Time", "Date")
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %-8s  %-4s  %-10s  %s\n",
		"------", "------", "----", "--------", "--------", "---", "----", "----")

	for _, s := range solves {
		dir := "ccw"
		if s.Clockwise {
			dir = "cw"
		}
		fmt.Printf("  %-12s  %-6s  %-6d  %-8d  %-8d  %-4s  %-10s  %s\n",
			s.PuzzleID, s.Source, s.LoopLength, s.Farthest, s.Enclosed, dir,
			s.Duration.String(), s.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(stats []*storage.PuzzleStats) {
	fmt.Printf("  %-12s  %-6s  %-10s  %s\n", "Puzzle", "Solves", "Average", "Last")
	fmt.Printf("  %-12s  %-6s  %-10s  %s\n", "------", "------", "-------", "----")
	for _, s := range stats {
		if s == nil {
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-10s  %s\n",
			s.PuzzleID, s.SolveCount, s.AvgDuration.String(), s.LastSolved.Format("2006-01-02 15:04"))
	}
}
