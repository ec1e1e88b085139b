// Package config loads sparsecalc settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/caarlos0/env/v11"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// Config controls CLI defaults. Command-line flags override these values.
type Config struct {
	Format        string `env:"SPARSECALC_FORMAT"          envDefault:"text"`
	LogLevel      string `env:"SPARSECALC_LOG_LEVEL"       envDefault:"info"`
	StrictBounds  bool   `env:"SPARSECALC_STRICT_BOUNDS"   envDefault:"false"`
	MaxDenseCells int    `env:"SPARSECALC_MAX_DENSE_CELLS" envDefault:"10000"`
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Format:        "text",
		LogLevel:      "info",
		MaxDenseCells: 10000,
	}
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	if !IsValidFormat(c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.MaxDenseCells <= 0 {
		return fmt.Errorf("invalid max dense cells %d: must be > 0", c.MaxDenseCells)
	}

	return nil
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}

// IsValidFormat reports whether format is one of ValidFormats.
func IsValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
