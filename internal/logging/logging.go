// Package logging builds the diagnostic logger used outside the user
// transcript.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the diagnostic logger.
type Options struct {
	Debug           bool
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns info-level logging without timestamps.
func DefaultOptions() Options {
	return Options{Prefix: "todo"}
}

// New creates a text logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
