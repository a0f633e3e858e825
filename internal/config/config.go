// Package config provides YAML-based configuration loading for pipeloop.
package config

// Config is the complete pipeloop configuration.
type Config struct {
	Puzzles PuzzlesConfig `yaml:"puzzles"`
	Storage StorageConfig `yaml:"storage"`
	Render  RenderConfig  `yaml:"render"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// PuzzlesConfig locates puzzle files.
type PuzzlesConfig struct {
	Dir string `yaml:"dir"`
}

// StorageConfig controls the solve history database.
type StorageConfig struct {
	DBPath  string `yaml:"db_path"`
	Enabled bool   `yaml:"enabled"`
}

// RenderConfig defines how analysed grids are drawn.
type RenderConfig struct {
	Interior  string      `yaml:"interior"`   // Single-character marker for enclosed cells
	Exterior  string      `yaml:"exterior"`   // Single-character marker for outside cells
	BoxGlyphs bool        `yaml:"box_glyphs"` // Use box-drawing characters for pipes
	Theme     ThemeConfig `yaml:"theme"`
}

// ThemeConfig selects a color preset and optional per-cell overrides.
// Colors are lipgloss color strings: ANSI numbers ("205") or hex ("#ff79c6").
type ThemeConfig struct {
	Name     string `yaml:"name"` // "default", "neon", "pastel" or "mono"
	Loop     string `yaml:"loop"`
	Start    string `yaml:"start"`
	Interior string `yaml:"interior"`
	Junk     string `yaml:"junk"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ThemeNames lists the known theme presets.
func ThemeNames() []string {
	return []string{"default", "neon", "pastel", "mono"}
}
