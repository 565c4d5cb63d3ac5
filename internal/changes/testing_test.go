package changes

import (
	"bytes"
	"log/slog"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// captureLogger returns a logger writing text records into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}
