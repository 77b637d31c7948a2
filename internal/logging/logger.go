// Package logging provides the structured logger used across the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging interface passed into pipeline stages. It is a thin
// facade over slog so components never depend on a concrete handler.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(err error, msg string, fields ...any)

	WithComponent(component string) Logger
}

// Config holds logger construction options.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // "text" or "json"
	Output io.Writer
}

// DefaultConfig returns the configuration used when none is supplied:
// info-level text output on stderr, keeping stdout clean for command output.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "text",
		Output: os.Stderr,
	}
}

type slogLogger struct {
	logger *slog.Logger
}

// New creates a structured logger from config.
func New(config *Config) Logger {
	if config == nil {
		config = DefaultConfig()
	}
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(config.Level)}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &slogLogger{logger: slog.New(handler)}
}

// ParseLevel converts a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *slogLogger) Debug(msg string, fields ...any) {
	l.logger.Debug(msg, fields...)
}

func (l *slogLogger) Info(msg string, fields ...any) {
	l.logger.Info(msg, fields...)
}

func (l *slogLogger) Warn(msg string, fields ...any) {
	l.logger.Warn(msg, fields...)
}

func (l *slogLogger) Error(err error, msg string, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	}
	l.logger.Error(msg, fields...)
}

func (l *slogLogger) WithComponent(component string) Logger {
	return &slogLogger{logger: l.logger.With("component", component)}
}
