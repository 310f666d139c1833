// Package logger provides the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// exit is swapped in tests so Fatal can be observed without ending the process.
var exit = os.Exit

// Logger is a text slog logger with a Fatal level on top.
type Logger struct {
	*slog.Logger
}

// New logs to stdout at the given numeric slog level (-4 debug, 0 info, 4 warn, 8 error).
func New(level int) *Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter logs text records to w at the given level.
func NewWithWriter(w io.Writer, level int) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(level)})
	return &Logger{Logger: slog.New(h)}
}

// With returns a child logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Fatal logs msg at error level and exits with status 1.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	exit(1)
}
