// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the application loggers
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mxlog "github.com/Munch42/MunchEx/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text", "console" or "logfmt" (default: text)
	Format string

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs besides the primary one
	AdditionalOutputs []io.Writer

	// EnableCaller adds file:line to every entry
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// NewLogger creates a new foundation logger. Unknown levels and formats
// fall back to the defaults.
func NewLogger(cfg LoggerConfig) *mxlog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := mxlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mxlog.FormatText
	}

	return mxlog.NewWithConfig(mxlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mxlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// Install creates a logger and makes it the process-wide default
func Install(cfg LoggerConfig) *mxlog.Logger {
	logger := NewLogger(cfg)
	mxlog.SetDefault(logger)
	return logger
}

// parseLevel converts a string level to mxlog.Level
func parseLevel(level string) mxlog.Level {
	parsed, err := mxlog.ParseLevel(level)
	if err != nil || level == "" {
		return mxlog.DefaultLevel()
	}
	return parsed
}
