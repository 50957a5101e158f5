package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stwalsh4118/prelude/internal/config"
)

// Logger defines the interface for structured logging
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

// logger implements Logger using zerolog
type logger struct {
	zl zerolog.Logger
}

// NewLogger creates a logger for the configured sinks. Command results are
// printed on stdout, so diagnostics only ever go to stderr or a file.
func NewLogger(cfg *config.Config) (Logger, error) {
	if cfg == nil {
		return nil, os.ErrInvalid
	}

	out, err := sink(cfg.Logging)
	if err != nil {
		return nil, err
	}

	zl := zerolog.New(out).
		Level(parseLevel(cfg.Logging.Level)).
		With().
		Timestamp().
		Logger()

	return &logger{zl: zl}, nil
}

// sink picks the output writer: a log file when configured, a pretty
// console writer on stderr when console logging is on, both when both are
// set, and a plain stderr writer otherwise.
func sink(cfg config.LoggingConfig) (io.Writer, error) {
	var writers []io.Writer

	if cfg.FilePath != "" {
		file, err := openLogFile(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	switch len(writers) {
	case 0:
		return os.Stderr, nil
	case 1:
		return writers[0], nil
	default:
		return zerolog.MultiLevelWriter(writers...), nil
	}
}

// parseLevel maps a configured level name to zerolog's. Config validation
// already rejects unknown names; anything else falls back to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *logger) Debug(msg string, fields ...interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *logger) Info(msg string, fields ...interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *logger) Warn(msg string, fields ...interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *logger) Error(msg string, fields ...interface{}) {
	l.zl.Error().Fields(fields).Msg(msg)
}

// With creates a new logger with additional fields
func (l *logger) With(fields ...interface{}) Logger {
	return &logger{
		zl: l.zl.With().Fields(fields).Logger(),
	}
}

// openLogFile opens the log file in append mode, creating its directory
// with owner-only permissions.
func openLogFile(path string) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}
