package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidLevel is returned for a level name slog does not know.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel maps debug, info, warn or error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, errors.Wrapf(ErrInvalidLevel, "%q", s)
	}
	return lvl, nil
}

// New returns a logger writing to w at level, as JSON when json is set and
// as text otherwise. An unknown level falls back to info.
func New(w io.Writer, level string, json bool) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl, ReplaceAttr: flattenErrors}

	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// flattenErrors logs error values by message; the text handler would print
// a wrapped error's stack trace.
func flattenErrors(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindAny {
		return a
	}
	if err, ok := a.Value.Any().(error); ok {
		return slog.String(a.Key, err.Error())
	}
	return a
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
