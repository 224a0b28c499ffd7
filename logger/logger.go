// Package logger builds the structured loggers shared by every component.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a [log.Logger] writing to w with timestamps and caller
// reporting enabled. The writer defaults to [os.Stderr].
func New(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// Discard returns a logger that drops everything, handy for tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// With creates a child logger with kv added to all its entries.
func With(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLevel parses level (debug, info, warn, error) and applies it to l.
// Unknown levels leave l untouched and return false.
func SetLevel(l *log.Logger, level string) bool {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return false
	}
	l.SetLevel(lvl)
	return true
}
