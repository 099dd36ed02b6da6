// Package prog supports building testable, composable programs.
//
// The main abstraction of this package is the [Program] interface, which can
// be combined using [Composite]. The entry point of a program is [Run], which
// handles the flags common to all programs, parses the rest, and turns the
// error returned by [Program.Run] into an exit status.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.elv.sh/ed/pkg/logutil"
)

// Usage is the first line of the usage message.
const Usage = "Usage: ed [-p string] [-s] [file]"

var logger = logutil.GetLogger("[prog] ")

// Program represents a subprogram.
type Program interface {
	// RegisterFlags is called before Run to register flags.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram. The arguments are the non-flag arguments.
	Run(fds [3]*os.File, args []string) error
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, Usage)
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program: 0 on success and 1 otherwise,
// unless the program asks for a different status with [Exit].
func Run(fds [3]*os.File, args []string, p Program) int {
	fs := flag.NewFlagSet("ed", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	var log string
	var help bool
	fs.StringVar(&log, "log", "", "a file to write debug log to")
	fs.BoolVar(&help, "help", false, "show usage help and quit")

	p.RegisterFlags(&FlagSet{FlagSet: fs})

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. -help is defined but -h is not;
			// treat -h like any other undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 1
	}

	if log != "" {
		err = logutil.SetOutputFile(log)
		if err == nil {
			defer logutil.SetOutput(io.Discard)
		} else {
			fmt.Fprintln(fds[2], err)
		}
	}

	if help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	logger.Println("program returned error:", err)
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var (
		bu badUsageError
		ex exitError
	)
	switch {
	case errors.As(err, &bu):
		usage(fds[2], fs)
	case errors.As(err, &ex):
		return ex.exit
	}
	return 1
}

// Composite returns a Program made up of subprograms. It registers the flags
// of all subprograms and runs them in turn, until one of them returns an error
// other than [ErrNextProgram].
func Composite(programs ...Program) Program {
	return composite(programs)
}

type composite []Program

func (cp composite) RegisterFlags(fs *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(fs)
	}
}

func (cp composite) Run(fds [3]*os.File, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, args)
		if !errors.Is(err, ErrNextProgram) {
			return err
		}
	}
	// All subprograms have returned ErrNextProgram.
	return ErrNextProgram
}

// ErrNextProgram is a special error that may be returned by [Program.Run] that
// is part of a [Composite] program, indicating that the next program should
// be tried.
var ErrNextProgram = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by [Program.Run]. It
// causes the main function to print out a message, the usage information and
// exit with 1.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by [Program.Run]. It
// causes the main function to exit with the given code without printing any
// error messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
