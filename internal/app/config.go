package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SourcePath   string // display-file source, a single file or a directory
	SettingsPath string // optional HCL settings file

	Format    string // "outline" or "json"
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SourcePath == "" {
		return nil, errors.New("SourcePath is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = "outline"
	}
	if cfg.Format != "outline" && cfg.Format != "json" {
		return nil, fmt.Errorf("invalid output format %q", cfg.Format)
	}
	return &cfg, nil
}
