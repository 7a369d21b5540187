// Package logging builds the zap loggers used by the bitarith command.
//
// Results are printed on stdout, so every log entry, algorithm traces
// included, goes to stderr.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger with the specified level and format
// ("json" or "console", case-insensitive).
func NewLogger(level, format string) (*zap.Logger, error) {
	cfg, err := newConfig(level, format)
	if err != nil {
		return nil, err
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

func newConfig(level, format string) (zap.Config, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zap.Config{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch strings.ToLower(format) {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	default:
		return zap.Config{}, fmt.Errorf("invalid log format %q, must be 'json' or 'console'", format)
	}

	// A trace repeats the same step message many times per call; sampling
	// would silently drop steps from the middle of an algorithm.
	cfg.Sampling = nil
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	return cfg, nil
}
