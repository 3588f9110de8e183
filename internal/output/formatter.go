package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter handles value output on stdout and diagnostics on stderr.
type Formatter struct {
	Writer    io.Writer
	ErrWriter io.Writer
	Color     bool
	Verbose   bool
}

// NewFormatter creates a new output formatter.
func NewFormatter(colorMode, verbose bool) *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Color:     colorMode,
		Verbose:   verbose,
	}
}

// Println prints a line to stdout.
func (f *Formatter) Println(args ...interface{}) {
	fmt.Fprintln(f.Writer, args...)
}

// PrintValue prints a path or path fragment as exactly one line. Invalid
// UTF-8 is replaced rather than written raw.
func (f *Formatter) PrintValue(v string) {
	fmt.Fprintln(f.Writer, strings.ToValidUTF8(v, "�"))
}

// Errorf prints a formatted error message to stderr.
func (f *Formatter) Errorf(format string, args ...interface{}) {
	if f.Color {
		c := color.New(color.FgRed)
		c.Fprintf(f.ErrWriter, format, args...)
	} else {
		fmt.Fprintf(f.ErrWriter, format, args...)
	}
}

// Diagnosef is Errorf gated on verbose mode. One-shot failures are silent
// unless the user asked for reasons.
func (f *Formatter) Diagnosef(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	f.Errorf(format, args...)
}

// FormatPredicate renders a boolean result for the interactive shell.
func (f *Formatter) FormatPredicate(ok bool) string {
	if !f.Color {
		return fmt.Sprint(ok)
	}
	if ok {
		return color.New(color.FgGreen).Sprint(ok)
	}
	return color.New(color.FgYellow).Sprint(ok)
}
