// Package config handles global flow configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global flow configuration.
type Config struct {
	// ScriptsDir overrides scripts-directory discovery. When empty,
	// the front-ends walk upward from the working directory looking
	// for a scripts/ directory.
	ScriptsDir string `toml:"scripts_dir"`

	// Editor is the editor used to open newly created scripts
	// (defaults to $EDITOR).
	Editor string `toml:"editor"`

	// Finder names the external fuzzy-finder binary. Empty means
	// "fzf"; "none" disables delegation entirely.
	Finder string `toml:"finder"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown
	// rendering. Supported values are ANSI color codes ("0" to "255")
	// or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path. The FLOW_CONFIG
// environment variable wins; otherwise ~/.config/flow/config.toml
// (XDG style), falling back to the OS-specific config location.
func DefaultPath() string {
	if env := os.Getenv("FLOW_CONFIG"); env != "" {
		return env
	}

	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "flow", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "flow", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// GetEditor returns the editor to use, falling back to $EDITOR.
func (c *Config) GetEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
}
