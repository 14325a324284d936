// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
)

// Warnf prints a one-line warning unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Errorf prints a fatal diagnostic in the same shape the loader always used:
// a blank line, the message, a blank line.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "\nERROR: "+format+"\n\n", a...)
}

// NewLogger returns a debug-level text logger on dst when verbose is set,
// and a logger that drops everything otherwise.
func NewLogger(dst io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
