// Package observability configures structured logging for the service.
package observability

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// DefaultLevel is used when LOG_LEVEL is unset or unrecognized.
const DefaultLevel = slog.LevelInfo

// NewLogger builds the application logger. Output is colorized when stdout
// is a terminal and plain otherwise, so piped logs stay readable.
func NewLogger(level string) *slog.Logger {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
		TimeFormat: time.Kitchen,
		Level:      ParseLevel(level),
	})
	return slog.New(handler)
}

// ParseLevel converts a level name to a slog.Level, falling back to
// DefaultLevel for anything it does not recognize.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}
