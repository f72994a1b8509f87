// ============================================================================
// uwu - Interpreter fuer die UwU-Skriptsprache
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, shown in text formats
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (console, text, json, logfmt)
	Format string

	// stderr, stdout or a file path (appended)
	Output string

	// Overrides Output when set, used by tests
	Writer io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
		Output: "stderr",
	}
}

// FromConfig builds a LoggerConfig from the logging section of a Config
func FromConfig(name string, cfg config.LoggingConfig) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  cfg.Level,
		Format: cfg.Format,
		Output: cfg.Output,
	}
}

// NewLogger creates a Foundation logger. The returned closer releases a log
// file if one was opened and is never nil.
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, io.Closer, error) {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nopCloser{}, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger")
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nopCloser{}, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger")
	}

	output, closer, err := openOutput(cfg)
	if err != nil {
		return nil, nopCloser{}, err
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
	return logger, closer, nil
}

// NewSimpleLogger creates a console logger on stderr at the default level
func NewSimpleLogger(name string) *mdwlog.Logger {
	logger, _, err := NewLogger(DefaultLoggerConfig(name))
	if err != nil {
		return mdwlog.New().WithName(name)
	}
	return logger
}

func openOutput(cfg LoggerConfig) (io.Writer, io.Closer, error) {
	if cfg.Writer != nil {
		return cfg.Writer, nopCloser{}, nil
	}

	switch cfg.Output {
	case "", "stderr":
		return os.Stderr, nopCloser{}, nil
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "failed to open log file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("logging.NewLogger").
			WithDetail("path", cfg.Output)
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
