// Package logging builds the slog logger used for --debug output.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Records below debug level are
// always dropped; when debug is false everything is dropped.
func New(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Keep stderr stable between runs.
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
