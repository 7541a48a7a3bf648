// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the scanner configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP port for serve mode

	// Engine
	CorpusPath      string `json:"corpus_path,omitempty"`      // Path to an alternative keyword corpus asset
	HistoryCapacity int    `json:"history_capacity,omitempty"` // Scans retained for session comparison

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed scan breakdowns
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.HistoryCapacity < 0 {
		return fmt.Errorf("config error: 'history_capacity' must be non-negative")
	}

	if c.CorpusPath != "" {
		if _, err := os.Stat(c.CorpusPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: corpus file not found: %s", c.CorpusPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags should always win for bools, so those are not merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CorpusPath == "" {
		result.CorpusPath = defaults.CorpusPath
	}
	if result.HistoryCapacity == 0 {
		result.HistoryCapacity = defaults.HistoryCapacity
	}

	return result
}
