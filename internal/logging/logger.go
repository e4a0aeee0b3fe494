// Package logging builds the slog logger used by the semgraph CLI.
//
// Output goes to stderr by default so that command results on stdout stay
// machine-readable. Two formats are supported: "text" (default) and "json".
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Format names accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config describes the logger to build.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string

	// Format is FormatText or FormatJSON. Empty means FormatText.
	Format string

	// Writer receives log lines. Nil means os.Stderr.
	Writer io.Writer
}

// ParseLevel maps a level name (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// New builds a logger from cfg. An unknown level falls back to info; use
// ParseLevel first to reject it.
func New(cfg Config) *slog.Logger {
	level, _ := ParseLevel(cfg.Level)
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
