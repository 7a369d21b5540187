// Package config loads bitarith settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete bitarith configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Trace  TraceConfig  `mapstructure:"trace"`
	Divide DivideConfig `mapstructure:"divide"`
	Verify VerifyConfig `mapstructure:"verify"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TraceConfig controls step-by-step narration of the algorithms
type TraceConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DivideConfig selects the divider used by the divide command
type DivideConfig struct {
	Method string `mapstructure:"method"`
}

// VerifyConfig contains settings for the verify command
type VerifyConfig struct {
	// VectorsFile is a YAML vector file; empty means the built-in vectors
	VectorsFile string `mapstructure:"vectors_file"`

	// Exhaustive also runs the domain sweep
	Exhaustive bool `mapstructure:"exhaustive"`

	Workers        int `mapstructure:"workers"`
	DivisorStride  int `mapstructure:"divisor_stride"`
	DividendStride int `mapstructure:"dividend_stride"`
}

// Divide methods
const (
	MethodRecursive = "recursive"
	MethodIterative = "iterative"
	MethodBoth      = "both"
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Trace: TraceConfig{
			Enabled: false,
		},
		Divide: DivideConfig{
			Method: MethodIterative,
		},
		Verify: VerifyConfig{
			VectorsFile:    "",
			Exhaustive:     false,
			Workers:        4,
			DivisorStride:  7,
			DividendStride: 97,
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// The logger parses level and format case-insensitively.
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}

	if format := strings.ToLower(c.Log.Format); format != "json" && format != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console'")
	}

	validMethods := []string{MethodRecursive, MethodIterative, MethodBoth}
	if !slices.Contains(validMethods, c.Divide.Method) {
		return fmt.Errorf("divide.method must be one of: recursive, iterative, both")
	}

	if c.Verify.Workers < 1 {
		return fmt.Errorf("verify.workers must be at least 1")
	}

	if c.Verify.DivisorStride < 1 || c.Verify.DivisorStride > 65535 {
		return fmt.Errorf("verify.divisor_stride must be between 1 and 65535")
	}

	if c.Verify.DividendStride < 1 || c.Verify.DividendStride > 65535 {
		return fmt.Errorf("verify.dividend_stride must be between 1 and 65535")
	}

	if c.Verify.VectorsFile != "" {
		if _, err := os.Stat(c.Verify.VectorsFile); err != nil {
			return fmt.Errorf("verify.vectors_file: %w", err)
		}
	}

	return nil
}

// LoadConfig loads configuration from file, environment, and flags
func LoadConfig() (*Config, error) {
	defaults := DefaultConfig()

	// Set Viper defaults so they're available during unmarshal
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)

	viper.SetDefault("trace.enabled", defaults.Trace.Enabled)

	viper.SetDefault("divide.method", defaults.Divide.Method)

	viper.SetDefault("verify.vectors_file", defaults.Verify.VectorsFile)
	viper.SetDefault("verify.exhaustive", defaults.Verify.Exhaustive)
	viper.SetDefault("verify.workers", defaults.Verify.Workers)
	viper.SetDefault("verify.divisor_stride", defaults.Verify.DivisorStride)
	viper.SetDefault("verify.dividend_stride", defaults.Verify.DividendStride)

	if err := viper.ReadInConfig(); err != nil {
		// Missing files fall back to defaults, both for search paths and for
		// an explicit SetConfigFile.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
