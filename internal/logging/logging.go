// Package logging builds the stderr logger shared by the commands.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr with the command name as prefix.
// Verbose enables debug messages.
func New(name string, verbose bool) *log.Logger {
	return NewWithWriter(os.Stderr, name, verbose)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, name string, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: name,
		Level:  level,
	})
}
