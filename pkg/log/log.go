// Package log provides structured logging for the accumulator benchmark
// harness. It wraps Go's log/slog with a single convenience every
// subsystem needs: a per-module child logger, so log lines from the
// Merkle tree, the two RSA variants, Hybrid, Verkle, and the runner
// itself all carry a "module" field without each package configuring its
// own handler.
package log

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger, adding per-module child loggers.
type Logger struct {
	inner *slog.Logger
}

// defaultLogger is the process-wide logger every package obtains its
// module-scoped child from via Default().Module(name).
var defaultLogger = newDefault()

func newDefault() *Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{inner: slog.New(h)}
}

// Default returns the package-wide logger.
func Default() *Logger {
	return defaultLogger
}

// Module returns a child logger with an additional "module" attribute.
// This is the primary way subsystems (merkle, rsaacc, hybrid, bench, ...)
// obtain their own contextual logger.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
