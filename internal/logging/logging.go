// Package logging provides the structured logging used by cmd/storekeygen. It is a thin
// wrapper over log/slog: no third-party structured logger appears anywhere in the example
// corpus this tool was grounded on, so slog is the standard-library choice with no gap to
// fill.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a logger that writes human-readable text to stderr, or JSON if jsonOutput is
// set (for piping storekeygen's diagnostics into another tool).
func New(verbose, jsonOutput bool) *slog.Logger {
	return NewWithWriter(os.Stderr, verbose, jsonOutput)
}

// NewWithWriter is New with the output stream as a parameter, so callers (and tests) can
// capture what would otherwise go to stderr.
func NewWithWriter(w io.Writer, verbose, jsonOutput bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
