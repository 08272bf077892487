// Package config loads server configuration from an optional YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all SwachIT server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// DatabasePath is the SQLite file location.
	DatabasePath string `yaml:"database_path"`

	// LogMode selects the zap preset: "dev" or "prod".
	LogMode string `yaml:"log_mode"`

	// WindowDays is the trailing window for generated daily series.
	WindowDays int `yaml:"window_days"`

	// DefaultWard is used when a request carries no ward.
	DefaultWard string `yaml:"default_ward"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:         ":8080",
		DatabasePath: "./swachit.db",
		LogMode:      "dev",
		WindowDays:   30,
		DefaultWard:  "Koramangala",
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error; an unreadable or
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if db := os.Getenv("SWACHIT_DB"); db != "" {
		cfg.DatabasePath = db
	}
	if mode := os.Getenv("SWACHIT_LOG_MODE"); mode != "" {
		cfg.LogMode = mode
	}
	if window := os.Getenv("SWACHIT_WINDOW_DAYS"); window != "" {
		if n, err := strconv.Atoi(window); err == nil && n >= 0 {
			cfg.WindowDays = n
		}
	}
}
