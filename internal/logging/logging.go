// Package logging builds the process logger and holds canonical field helpers.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Canonical log field names.
const (
	KeyPhase     = "phase"
	KeyRemaining = "remaining"
	KeyCycles    = "completed_cycles"
	KeyCue       = "cue"
	KeyPath      = "path"
	KeyError     = "error"
)

// New returns a text logger writing to out at the given level name.
func New(out io.Writer, level string) (*slog.Logger, error) {
	parsed, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: parsed})
	return slog.New(handler), nil
}

// ParseLevel maps debug, info, warn and error to slog levels. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Phase(name string) slog.Attr         { return slog.String(KeyPhase, name) }
func Remaining(d time.Duration) slog.Attr { return slog.Duration(KeyRemaining, d) }
func Cycles(n int) slog.Attr              { return slog.Int(KeyCycles, n) }
func Cue(name string) slog.Attr           { return slog.String(KeyCue, name) }
func Path(p string) slog.Attr             { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
