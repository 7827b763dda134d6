// Package logging builds the diagnostic logger used next to the console output.
package logging

import (
	"io"

	"github.com/phuslu/log"
)

// New returns a console logger writing to w. Only warnings and errors are
// shown unless verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return &log.Logger{
		Level:      level,
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			Writer:         w,
			ColorOutput:    false,
			QuoteString:    true,
			EndWithMessage: true,
		},
	}
}

// Nop returns a logger that discards everything.
func Nop() *log.Logger {
	return &log.Logger{
		Level:  log.PanicLevel,
		Writer: &log.IOWriter{Writer: io.Discard},
	}
}
