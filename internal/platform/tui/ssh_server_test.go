package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pipeloop/internal/logging"
)

func TestHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := hostKeyPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pipeloop", "host_key"), path)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestHostKeyPathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := hostKeyPath("~/keys/server")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "keys", "server"), path)
}

func TestHostKeyPathExplicit(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "key")

	path, err := hostKeyPath(want)
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.DirExists(t, filepath.Dir(want))
}

func TestNewSSHServer(t *testing.T) {
	s, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
		PuzzleDir:   testdataPath(),
		Viewer:      DefaultViewerOptions(),
		Logger:      logging.Discard(),
	})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", s.Addr())
}
