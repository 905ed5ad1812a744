// Package config loads optional resumehub configuration from YAML.
//
// Configuration is looked up in two places, first match wins:
//
//  1. ./resumehub.yaml in the working directory
//  2. $XDG_CONFIG_HOME/resumehub/config.yaml (falling back to
//     ~/.config/resumehub/config.yaml)
//
// Every value has a default, so a missing config file is not an error.
// Command-line flags override anything loaded here.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-adjustable settings.
type Config struct {
	// DBPath is the SQLite database file location.
	DBPath string `yaml:"db_path"`

	// Format is the default output format: "text" or "json".
	Format string `yaml:"format"`

	// Verbose enables debug logging by default.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DBPath: "resumehub.db",
		Format: "text",
	}
}

// Load reads configuration from path. When path is empty the standard
// lookup locations are tried in order; a missing file yields defaults.
// Unknown fields and malformed YAML are errors.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = findConfig()
		if err != nil {
			return cfg, err
		}
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	// Strict decode catches typos like "formta:".
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// findConfig returns the first existing config file location, or "" when
// none exists.
func findConfig() (string, error) {
	candidates := []string{"resumehub.yaml"}

	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "resumehub", "config.yaml"))
	}

	for _, candidate := range candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
		}
	}

	return "", nil
}

// userConfigDir resolves $XDG_CONFIG_HOME with the ~/.config fallback.
func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// validate checks loaded values.
func validate(cfg Config) error {
	if cfg.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	switch cfg.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format must be %q or %q, got %q", "text", "json", cfg.Format)
	}
	return nil
}
