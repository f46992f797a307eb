// ============================================================================
// expar - expression parse tree lowering
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	mdwlog "github.com/msto63/expar/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format (json, text, console; default: console)
	Format string

	// File redirects all entries to the named file in JSON format
	File string

	// Output replaces stderr as the primary destination
	Output io.Writer

	// Additional outputs besides the primary destination
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// Logger wraps the foundation logger together with the file it may own
type Logger struct {
	*mdwlog.Logger
	name string
	file *os.File
}

// Name returns the configured logger name
func (l *Logger) Name() string {
	return l.name
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// NewLogger creates a logger from configuration
func NewLogger(cfg LoggerConfig) (*Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid logger configuration").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("level", cfg.Level)
	}

	if cfg.Format == "" {
		cfg.Format = "console"
	}
	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid logger configuration").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("format", cfg.Format)
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := &Logger{
		Logger: mdwlog.NewWithConfig(mdwlog.Config{
			Level:  level,
			Format: format,
			Output: output,
			Name:   cfg.Name,
		}),
		name: cfg.Name,
	}

	if cfg.File == "" {
		return logger, nil
	}

	file, err := openLogFile(cfg.File)
	if err != nil {
		return nil, err
	}
	logger.file = file

	// Files always get JSON; console colors do not belong there
	logger.Logger = logger.Logger.WithOutput(file).WithFormat(mdwlog.FormatJSON)
	return logger, nil
}

// NewSimpleLogger creates a console logger at the default level
func NewSimpleLogger(name string) *Logger {
	logger, err := NewLogger(DefaultLoggerConfig(name))
	if err != nil {
		// The default configuration is always valid
		panic(err)
	}
	return logger
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, mdwerror.Wrap(err, "failed to create log directory").
				WithCode(mdwerror.CodeIOError).
				WithDetail("path", dir)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to open log file").
			WithCode(mdwerror.CodeIOError).
			WithDetail("path", path)
	}
	return file, nil
}
