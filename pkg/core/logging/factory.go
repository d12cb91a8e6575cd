// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the diagnostic logger
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/termio/foundation/core/error"
	mdwlog "github.com/msto63/termio/foundation/core/log"
	"github.com/msto63/termio/pkg/core/config"
)

// Output targets besides a file path
const (
	OutputDiscard = "discard"
	OutputStderr  = "stderr"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format ("text", "json" or "logfmt")
	Format string

	// Output is "discard", "stderr" or a file path. Logs never go to
	// stdout, which belongs to the terminal dialogue.
	Output string

	// Verbose forces debug level text output on Stderr
	Verbose bool

	// Stderr replaces os.Stderr, used by tests
	Stderr io.Writer

	// SessionID is attached as correlation id; generated when empty
	SessionID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
		Output: OutputDiscard,
	}
}

// FromConfig derives a LoggerConfig from the [logging] section
func FromConfig(name string, cfg config.LoggingConfig, verbose bool) LoggerConfig {
	return LoggerConfig{
		Name:    name,
		Level:   cfg.Level,
		Format:  cfg.Format,
		Output:  cfg.Output,
		Verbose: verbose,
	}
}

// nopCloser is returned when the output needs no cleanup
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger creates a new Foundation logger. The returned Closer releases a
// log file and must be called when the program ends.
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, io.Closer, error) {
	level, err := mdwlog.ParseLevel(orDefault(cfg.Level, "info"))
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger")
	}
	format, err := mdwlog.ParseFormat(orDefault(cfg.Format, "text"))
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger")
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var output io.Writer
	var closer io.Closer = nopCloser{}

	target := strings.TrimSpace(cfg.Output)
	switch {
	case cfg.Verbose:
		output = stderr
		format = mdwlog.FormatText
		if level > mdwlog.LevelDebug {
			level = mdwlog.LevelDebug
		}
	case target == "" || strings.EqualFold(target, OutputDiscard):
		output = io.Discard
	case strings.EqualFold(target, OutputStderr):
		output = stderr
	case target == "stdout" || target == "-":
		return nil, nil, mdwerror.New("logging to stdout would corrupt the terminal dialogue").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger").
			WithDetail("output", target)
	default:
		file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, mdwerror.Wrap(err, "failed to open log file").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("logging.NewLogger").
				WithDetail("output", target)
		}
		output = file
		closer = file
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(sessionID)

	return logger, closer, nil
}

// NewSessionID returns a fresh correlation id for one program run
func NewSessionID() string {
	return uuid.NewString()
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
