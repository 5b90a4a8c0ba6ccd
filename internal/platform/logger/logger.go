package logger

import (
	"log/slog"
	"os"
)

// New returns a slog.Logger configured from LOG_FORMAT.
func New(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// Init installs the configured logger as the slog default.
func Init(format string) *slog.Logger {
	log := New(format)
	slog.SetDefault(log)
	return log
}
