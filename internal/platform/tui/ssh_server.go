package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pipeloop/internal/logging"
	"github.com/vovakirdan/pipeloop/internal/pipes/puzzles"
	"github.com/vovakirdan/pipeloop/internal/storage"
)

// shutdownGrace bounds how long open sessions get to finish after Serve's
// context is cancelled.
const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pipeloop/host_key.
	HostKeyPath string

	// PuzzleDir is scanned for puzzles at the start of every session.
	PuzzleDir string

	// Store records solves made over SSH. May be nil.
	Store *storage.Store

	// Viewer holds the render and theme settings for sessions.
	Viewer ViewerOptions

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Logger receives session events. Defaults to a stderr logger.
	Logger *log.Logger
}

// SSHServer serves the puzzle browser over SSH, one bubbletea program per session.
type SSHServer struct {
	cfg    SSHServerConfig
	srv    *ssh.Server
	logger *log.Logger
}

// NewSSHServer prepares the host key location and builds the wish server.
// It does not start listening.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Logger == nil {
		cfg.Logger = logging.New(os.Stderr, log.InfoLevel, "pipeloop-ssh")
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, logger: cfg.Logger}
	s.srv, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		// Middlewares run last to first: sessions are logged around the program.
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.logSession,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	return s, nil
}

// hostKeyPath expands the configured key path, defaulting to
// ~/.pipeloop/host_key, and makes sure its directory exists. wish generates
// the key on first start.
func hostKeyPath(configured string) (string, error) {
	path := configured
	home, homeErr := os.UserHomeDir()
	switch {
	case path == "":
		if homeErr != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		path = filepath.Join(home, ".pipeloop", "host_key")
	case len(path) > 1 && path[:2] == "~/" && homeErr == nil:
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession loads the puzzle directory afresh and hands the session a browser.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	loader := puzzles.NewLoader(s.cfg.PuzzleDir)
	loader.OnSkip = func(path string, err error) {
		s.logger.Warn("skipping puzzle", "path", path, "error", err)
	}
	list, err := loader.LoadAll()
	if err != nil {
		s.logger.Error("cannot load puzzles", "dir", s.cfg.PuzzleDir, "error", err)
	}
	s.logger.Debug("session puzzles", "user", sess.User(), "count", len(list))

	opts := s.cfg.Viewer
	opts.Store = s.cfg.Store
	opts.Source = "ssh"
	opts.Width, opts.Height = pty.Window.Width, pty.Window.Height

	return NewBrowserModel(list, opts), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		began := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("session opened", "user", sess.User(), "remote", remote)

		next(sess)

		s.logger.Info("session closed", "user", sess.User(), "remote", remote,
			"after", time.Since(began).Round(time.Second))
	}
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
// A listener failure is returned as is.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.cfg.Address, "puzzles", s.cfg.PuzzleDir)

	failed := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			failed <- err
		}
		close(failed)
	}()

	select {
	case err, ok := <-failed:
		if !ok {
			return nil
		}
		s.logger.Error("server stopped", "error", err)
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
