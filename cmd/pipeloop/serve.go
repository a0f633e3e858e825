package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeloop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server with the puzzle browser",
	Long: `Start an SSH server that lets users browse and step through puzzles.

Each SSH connection gets its own session with the puzzle browser. Puzzles
are read from the puzzle directory when a session starts, so new files show
up without a restart. Solves are recorded in the shared history database.

Host key handling:
  - If --host-key or server.host_key_path is set, uses that key file
  - Otherwise, auto-generates a key at ~/.pipeloop/host_key

Examples:
  pipeloop serve                           # Listen on the configured address
  pipeloop serve --ssh :2222               # Listen on port 2222
  pipeloop serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	address := cfg.Server.Address
	if flagSSHAddr != "" {
		address = flagSSHAddr
	}
	hostKey := cfg.Server.HostKeyPath
	if flagHostKey != "" {
		hostKey = flagHostKey
	}
	idle := cfg.Server.IdleTimeoutMinutes
	if flagIdleTimeout >= 0 {
		idle = flagIdleTimeout
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	if store != nil {
		defer store.Close()
	}

	opts := viewerOptions(store, 80, 24)
	opts.Source = "ssh"

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     address,
		HostKeyPath: hostKey,
		PuzzleDir:   cfg.Puzzles.Dir,
		Store:       store,
		Viewer:      opts,
		IdleTimeout: time.Duration(idle) * time.Minute,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(address))
	fmt.Println("Press Ctrl+C to stop")

	return server.Serve(ctx)
}

// portOf returns the port part of a host:port address.
func portOf(address string) string {
	if _, port, err := net.SplitHostPort(address); err == nil {
		return port
	}
	return address
}
