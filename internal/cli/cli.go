// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/c8dc/internal/options"
)

// ParseFlags parses the command line arguments and returns the program options.
// Every returned error is a *UsageError, callers print usage and exit.
func ParseFlags() (options.Program, error) {
	return ParseArgs(os.Args)
}

// ParseArgs parses the given arguments, the first one being the program name.
func ParseArgs(args []string) (options.Program, error) {
	var opts options.Program
	if len(args) == 0 {
		return opts, &UsageError{msg: "missing program name"}
	}

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	if err := flags.Parse(args[1:]); err != nil {
		return opts, &UsageError{msg: err.Error()}
	}

	positional := flags.Args()
	switch len(positional) {
	case 0:
		return opts, &UsageError{msg: "no file to disassemble given"}
	case 1:
		opts.Input = positional[0]
		return opts, nil
	default:
		return opts, &UsageError{msg: fmt.Sprintf("expected one file to disassemble, got %d", len(positional))}
	}
}

// UsageError represents an error that should show usage information
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the program banner and usage text.
func ShowUsage(w io.Writer, version string) {
	_, _ = fmt.Fprintf(w, "c8dc - CHIP-8 ROM disassembler\nversion: %s\n\n", version)
	_, _ = fmt.Fprintf(w, "usage: c8dc <file to disassemble>\n")
}
