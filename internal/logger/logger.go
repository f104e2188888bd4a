// Package logger wraps zerolog.Logger with the constructors used by the
// pixelkey command.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Warn,
// Error and so on) is available on it directly. The library itself never
// writes logs on its own; it only logs through a zerolog.Logger handed to
// pixelkey.WithLogger.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New returns a JSON logger writing to w. Every entry carries a "role"
// field and a timestamp; entries below level are dropped.
func New(w io.Writer, role string, level zerolog.Level) *Logger {
	l := zerolog.New(w).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// ParseLevel is zerolog.ParseLevel with an empty string meaning warn.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(s)
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a logger inheriting the receiver's fields with an extra
// "command" field.
func (l *Logger) Child(command string) *Logger {
	return &Logger{l.With().Str("command", command).Logger()}
}
