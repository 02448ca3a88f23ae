package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// newLogger returns a text logger on w. verbose forces debug level;
// otherwise the level comes from $<APPNAME>_LOG_LEVEL and defaults to warn.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := parseLevel(os.Getenv(envLogLevel))
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
