// Package corelog wraps *slog.Logger so the emulator core (CPU, PPU,
// memory bus) never depends on the global default logger. A host
// embedding the core can inject its own *slog.Logger via New, fall
// back to the process default via Default, or silence the core
// entirely via Nop.
package corelog

import (
	"context"
	"log/slog"
)

// Logger is safe to use as a nil pointer: every method on a nil
// *Logger (or one wrapping a nil *slog.Logger) is a no-op.
type Logger struct {
	inner *slog.Logger
}

// New wraps an existing *slog.Logger for use by the core.
func New(l *slog.Logger) *Logger {
	return &Logger{inner: l}
}

// Default wraps slog.Default(), matching the behavior of logging
// through the global logger for hosts that don't inject their own.
func Default() *Logger {
	return &Logger{inner: slog.Default()}
}

// Nop returns a Logger that discards everything logged through it.
func Nop() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args) }

func (l *Logger) log(level slog.Level, msg string, args []any) {
	if l == nil || l.inner == nil {
		return
	}
	l.inner.Log(context.Background(), level, msg, args...)
}
