// Package config holds the settings of the treectl command line tool.
package config

import (
	"github.com/pkg/errors"

	"github.com/g-m-twostay/go-trees/Trees"
)

// Config is the top-level configuration struct for treectl.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Strategy  string         `mapstructure:"strategy"`
	IndexBits int            `mapstructure:"index_bits"`
	Format    string         `mapstructure:"format"`
	Color     bool           `mapstructure:"color"`
	Check     bool           `mapstructure:"check"`
	Log       LogConfig      `mapstructure:"log"`
	Workload  WorkloadConfig `mapstructure:"workload"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// WorkloadConfig is the sequence of values applied to a fresh tree: all inserts first, then all deletes.
type WorkloadConfig struct {
	Insert []int `mapstructure:"insert"`
	Delete []int `mapstructure:"delete"`
}

// Output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Default values.
const (
	DefaultStrategy  = "height"
	DefaultIndexBits = 32
	DefaultFormat    = FormatTable
	DefaultColor     = true
	DefaultCheck     = true
	DefaultLogLevel  = "info"
	DefaultLogJSON   = false
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidStrategy indicates an unknown balancing strategy name.
	ErrInvalidStrategy = errors.New("strategy must be height or color")
	// ErrInvalidIndexBits indicates an index width without a matching unsigned type.
	ErrInvalidIndexBits = errors.New("index_bits must be 16, 32 or 64")
	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("format must be table or plain")
	// ErrInvalidLogLevel indicates a level slog does not know.
	ErrInvalidLogLevel = errors.New("log.level must be debug, info, warn or error")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if _, err := c.TreeStrategy(); err != nil {
		return ErrInvalidStrategy
	}

	switch c.IndexBits {
	case 16, 32, 64:
	default:
		return ErrInvalidIndexBits
	}

	switch c.Format {
	case FormatTable, FormatPlain:
	default:
		return ErrInvalidFormat
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}

// TreeStrategy parses the configured strategy name.
func (c *Config) TreeStrategy() (Trees.Strategy, error) {
	return Trees.ParseStrategy(c.Strategy)
}
