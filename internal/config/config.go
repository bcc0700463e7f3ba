// Package config loads and provides application configuration.
//
// On first run, a default YAML config is written to ~/.vtterm.yaml.
// Subsequent runs read and merge that file with built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user-configurable settings.
type Config struct {
	// DefaultShell is the command spawned for new sessions. Empty means
	// detect the host OS's default shell at spawn time.
	DefaultShell string `yaml:"default_shell"`

	// DefaultDir is the working directory for new sessions. Empty means
	// the current working directory at launch time.
	DefaultDir string `yaml:"default_dir"`

	// Cols and Lines size new screens (80x24 is the classic VT100 default).
	Cols  int `yaml:"cols"`
	Lines int `yaml:"lines"`

	// Encodings lists, in priority order, the byte encodings a session's
	// codec.Chain should try before falling back to the last entry. See
	// codec.Select for the recognised names.
	Encodings []string `yaml:"encodings"`

	// ScrollbackLines is currently unused — this emulator keeps no
	// scrollback buffer — but is accepted and clamped so config files from
	// a future scrollback feature don't fail to parse.
	ScrollbackLines int `yaml:"scrollback_lines"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DefaultShell:    "",
		DefaultDir:      "",
		Cols:            80,
		Lines:           24,
		Encodings:       []string{"utf-8", "latin1"},
		ScrollbackLines: 0,
	}
}

// configPath returns the path to ~/.vtterm.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vtterm.yaml")
}

// Load reads the config file, falling back to defaults for missing fields.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		// No config file yet — write defaults for future editing.
		_ = writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.Cols < 1 {
		cfg.Cols = 80
	}
	if cfg.Lines < 1 {
		cfg.Lines = 24
	}
	if cfg.ScrollbackLines < 0 {
		cfg.ScrollbackLines = 0
	}
	if len(cfg.Encodings) == 0 {
		cfg.Encodings = []string{"utf-8", "latin1"}
	}

	return cfg
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	header := []byte("# vtterm configuration\n# Edit this file to customise defaults.\n\n")
	return os.WriteFile(path, append(header, data...), 0644)
}
