// Package config reads and writes the workspace configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults for a freshly initialized workspace.
const (
	DefaultYear     = 2025
	DefaultInputDir = "inputs"
)

// Config represents the flat workspace configuration.
type Config struct {
	Version  string `json:"version"`
	Year     int    `json:"year"`      // puzzle year the workspace tracks
	InputDir string `json:"input_dir"` // directory holding dayNN.txt files
}

// Default returns the configuration a new workspace starts with.
func Default() *Config {
	return &Config{
		Version:  "1",
		Year:     DefaultYear,
		InputDir: DefaultInputDir,
	}
}

// Load reads .advent/config.json from the specified directory.
// Returns an error if no config is found - callers fall back to
// Default() when the workspace is uninitialized.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ".advent", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}

	return &cfg, nil
}

// Save writes config.json under the directory's .advent dir.
func Save(dir string, cfg *Config) error {
	adventDir := filepath.Join(dir, ".advent")
	if err := os.MkdirAll(adventDir, 0755); err != nil {
		return fmt.Errorf("failed to create .advent dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(adventDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// InputPath returns the conventional input file location for a day,
// e.g. inputs/day02.txt.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", day))
}
