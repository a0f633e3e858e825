package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Load loads the pipeloop configuration.
// Search order: customPath -> ~/.pipeloop/config.yaml -> ./configs/pipeloop.yaml -> embedded default.
// Every file is applied over the built-in defaults, so partial files are fine.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if loaded, ok := tryFile(userCfgPath); ok {
			return loaded, loaded.Validate()
		}
	}

	// Try local configs directory
	if loaded, ok := tryFile(filepath.Join("configs", "pipeloop.yaml")); ok {
		return loaded, loaded.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// tryFile reads an optional config file over the defaults.
// Missing or malformed files are skipped.
func tryFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pipeloop", filename)
}

// ValidationError reports a configuration field with an unusable value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Validate checks the configuration and returns every problem found.
func (c Config) Validate() error {
	var errs []error

	if utf8.RuneCountInString(c.Render.Interior) != 1 {
		errs = append(errs, ValidationError{"render.interior", "must be a single character"})
	}
	if utf8.RuneCountInString(c.Render.Exterior) != 1 {
		errs = append(errs, ValidationError{"render.exterior", "must be a single character"})
	}
	if c.Render.Theme.Name != "" && !slices.Contains(ThemeNames(), c.Render.Theme.Name) {
		errs = append(errs, ValidationError{"render.theme.name",
			fmt.Sprintf("unknown theme %q (want one of %s)", c.Render.Theme.Name, strings.Join(ThemeNames(), ", "))})
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		errs = append(errs, ValidationError{"server.idle_timeout_minutes", "must not be negative"})
	}
	if c.Storage.Enabled && c.Storage.DBPath == "" {
		errs = append(errs, ValidationError{"storage.db_path", "required when storage is enabled"})
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, ValidationError{"log.level", fmt.Sprintf("unknown level %q", c.Log.Level)})
	}

	return errors.Join(errs...)
}

// Markers returns the interior and exterior marker runes.
// Call after Validate; empty markers fall back to 'I' and '.'.
func (r RenderConfig) Markers() (interior, exterior rune) {
	interior, exterior = 'I', '.'
	if ch, _ := utf8.DecodeRuneInString(r.Interior); ch != utf8.RuneError {
		interior = ch
	}
	if ch, _ := utf8.DecodeRuneInString(r.Exterior); ch != utf8.RuneError {
		exterior = ch
	}
	return interior, exterior
}
