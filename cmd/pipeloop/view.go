package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pipeloop/internal/platform/tui"
)

var flagSpeed int

var viewCmd = &cobra.Command{
	Use:   "view [file|id]",
	Short: "Step through the analysis interactively",
	Long: `Open the analysis of a puzzle in the terminal and advance it one stage
at a time. With no argument a browser of all puzzles is shown instead.

Controls:
  Right/Space - Next stage
  Enter       - Run to the end
  P           - Play/pause autoplay
  R           - Reset
  G           - Toggle box-drawing glyphs
  ?           - Help
  Q/Ctrl+C    - Quit

Examples:
  pipeloop view
  pipeloop view tangle
  pipeloop view ./input.txt --speed 4`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Autoplay stages per second (default from viewer)")
}

func runView(_ *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("history disabled", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := viewerOptions(store, width, height)
	if flagSpeed > 0 {
		opts.StepsPerSecond = flagSpeed
	}

	loader := newLoader()
	if len(args) == 0 {
		list, err := loader.LoadAll()
		if err != nil {
			return err
		}
		return tui.RunBrowser(list, opts)
	}

	p, err := loader.Resolve(args[0])
	if err != nil {
		return err
	}
	return tui.RunViewer(p, opts)
}
