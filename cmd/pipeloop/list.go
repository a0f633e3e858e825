package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List puzzles in the puzzle directory",
	Long:  `Shows every puzzle file found in the configured puzzle directory.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	list, err := newLoader().LoadAll()
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Printf("No puzzles found in %s.\n", cfg.Puzzles.Dir)
		return nil
	}

	fmt.Printf("Puzzles in %s:\n", cfg.Puzzles.Dir)
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range list {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "--", "----", "----")

	for _, p := range list {
		size := fmt.Sprintf("%dx%d", p.Map.W, p.Map.H)
		fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, p.ID, size, p.Name)
	}

	fmt.Println()
	fmt.Println("Run 'pipeloop view <id>' to step through a puzzle.")
	return nil
}
