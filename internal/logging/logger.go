package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured application logger writing to w.
// Stdout belongs to the audit tool, so callers normally pass os.Stderr.
// It standardizes common keys (e.g., "error" -> "err").
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// ForCLI returns the logger used by the command line.
// Without debug only warnings and errors reach Stderr.
func ForCLI(debug bool) *slog.Logger {
	if debug {
		return New(os.Stderr, slog.LevelDebug)
	}
	return New(os.Stderr, slog.LevelWarn)
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
