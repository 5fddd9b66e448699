package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// logger carries diagnostics only. User-facing lines go through the User*
// helpers in user.go.
var logger = newLogger(os.Stderr, false, slog.LevelInfo)

func newLogger(w io.Writer, json bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup replaces the diagnostic logger. Debug records are kept only when
// verbose is set; a nil w means stderr.
func Setup(verbose, json bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = newLogger(w, json, level)
}

// Verbose reports whether debug records are being written.
func Verbose() bool {
	return logger.Enabled(context.Background(), slog.LevelDebug)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}
