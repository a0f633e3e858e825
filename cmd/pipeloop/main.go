// pipeloop traces the closed pipe loop through a puzzle grid and counts the
// tiles it encloses.
//
// Usage:
//
//	pipeloop solve [file|id...]   - Analyse puzzles and record the results
//	pipeloop render <file|id>     - Print the analysed grid
//	pipeloop list                 - List puzzles in the puzzle directory
//	pipeloop view <file|id>       - Step through the analysis interactively
//	pipeloop serve                - Start SSH server with the puzzle browser
//	pipeloop history [id]         - Show recorded solves
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.pipeloop, ./configs)
//	--puzzles <dir>     - Puzzle directory
//	--db <path>         - History database path
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeloop/internal/config"
	"github.com/vovakirdan/pipeloop/internal/logging"
	"github.com/vovakirdan/pipeloop/internal/pipes/core"
	"github.com/vovakirdan/pipeloop/internal/pipes/puzzles"
	"github.com/vovakirdan/pipeloop/internal/platform/tui"
	"github.com/vovakirdan/pipeloop/internal/storage"
)

var (
	// Global flags
	flagConfigPath string
	flagPuzzleDir  string
	flagDBPath     string
	flagLogLevel   string

	// Set up by the root command before any subcommand runs.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipeloop",
	Short: "Trace pipe loops and count the tiles they enclose",
	Long: `pipeloop analyses grids of pipe tiles. Starting from the S tile it walks
the one closed loop through the grid, decides which way the loop winds and
fills the region it encloses.

Available commands:
  solve    - Analyse puzzles and record the results
  render   - Print the analysed grid
  list     - List puzzles in the puzzle directory
  view     - Step through the analysis interactively
  serve    - Start SSH server with the puzzle browser
  history  - Show recorded solves

Examples:
  pipeloop solve
  pipeloop solve ./day10.txt --no-save
  pipeloop render tangle --box --color
  pipeloop view sparse
  pipeloop serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPuzzleDir, "puzzles", "", "Puzzle directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup loads the configuration, applies flag overrides and creates the logger.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}

	if flagPuzzleDir != "" {
		loaded.Puzzles.Dir = flagPuzzleDir
	}
	if flagDBPath != "" {
		loaded.Storage.DBPath = flagDBPath
		loaded.Storage.Enabled = true
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(loaded.Log.Level)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = logging.New(os.Stderr, level, "pipeloop")
	logger.Debug("configuration loaded", "puzzles", cfg.Puzzles.Dir, "db", cfg.Storage.DBPath)
	return nil
}

// newLoader returns a loader for the configured puzzle directory that logs skipped files.
func newLoader() *puzzles.Loader {
	loader := puzzles.NewLoader(cfg.Puzzles.Dir)
	loader.OnSkip = func(path string, err error) {
		logger.Warn("skipping puzzle", "path", path, "error", err)
	}
	return loader
}

// openStore opens the history database, or returns nil when history is disabled.
func openStore() (*storage.Store, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}
	return storage.Open(cfg.Storage.DBPath)
}

// renderOptions builds render settings from the configuration.
func renderOptions() core.RenderOptions {
	opts := core.DefaultRenderOptions()
	opts.Interior, opts.Exterior = cfg.Render.Markers()
	opts.BoxGlyphs = cfg.Render.BoxGlyphs
	return opts
}

// viewerOptions builds TUI settings from the configuration.
func viewerOptions(store *storage.Store, width, height int) tui.ViewerOptions {
	opts := tui.DefaultViewerOptions()
	opts.Render = renderOptions()
	opts.Theme = tui.ThemeFromConfig(cfg.Render.Theme)
	opts.Store = store
	opts.Width = width
	opts.Height = height
	return opts
}
