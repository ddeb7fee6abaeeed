package app

import (
	"io"
	"log/slog"
)

// newLogger builds the run's logger. It writes to w only and never replaces
// the global logger, so tests can run apps side by side. levelStr and
// formatStr are assumed to have passed NewConfig.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
