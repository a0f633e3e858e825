package config

import (
	_ "embed"
)

//go:embed defaults/pipeloop.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Puzzles: PuzzlesConfig{
			Dir: "./puzzles",
		},
		Storage: StorageConfig{
			DBPath:  "~/.pipeloop/history.db",
			Enabled: true,
		},
		Render: RenderConfig{
			Interior:  "I",
			Exterior:  ".",
			BoxGlyphs: false,
			Theme: ThemeConfig{
				Name: "default",
			},
		},
		Server: ServerConfig{
			Address:            ":23234",
			HostKeyPath:        ".ssh/pipeloop_ed25519",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
