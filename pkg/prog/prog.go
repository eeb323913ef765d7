// Package prog provides the entry point of programs built on boxtk.
//
// It handles flags common to all programs and the conventions for exit
// statuses, and delegates the rest to a Program.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/boxtk/boxtk/pkg/logutil"
)

// Program is a program run by Run.
type Program interface {
	// RegisterFlags registers flags specific to the program.
	RegisterFlags(fs *FlagSet)
	// Run runs the program. The flags have been parsed, and args contains the
	// remaining arguments.
	Run(fds [3]*os.File, args []string) error
}

type commonFlags struct {
	log  string
	help bool
}

func newFlagSet(name string, f *commonFlags) *FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.log, "log", "", "Write debug log to a file")
	fs.BoolVar(&f.help, "help", false, "Show usage help and quit")
	return &FlagSet{fs}
}

func usage(out io.Writer, fs *FlagSet) {
	fmt.Fprintf(out, "Usage: %s [flags]\n", fs.Name())
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// Run parses command-line flags and runs the program. It returns the exit
// status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	var f commonFlags
	fs := newFlagSet(filepath.Base(args[0]), &f)
	p.RegisterFlags(fs)

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// Parse returns ErrHelp when -h is given, which is not defined.
			// Treat it like any other undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.log != "" {
		if err := logutil.SetOutputFile(f.log); err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot open log file:", err)
		}
	}

	if f.help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var badUsage badUsageError
	var exit exitError
	switch {
	case errors.As(err, &badUsage):
		usage(fds[2], fs)
	case errors.As(err, &exit):
		return exit.exit
	}
	return 2
}

// BadUsage returns an error that may be returned by Program.Run. It causes Run
// to print the message and the usage, and exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns an error that may be returned by Program.Run. It causes Run to
// exit with the given code without printing any message. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
