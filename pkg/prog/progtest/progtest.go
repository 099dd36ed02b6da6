// Package progtest contains utilities for testing [prog.Program]
// implementations.
//
// A typical test looks like:
//
//	progtest.Test(t, program,
//		ThatEd("-s", "file").WithStdin("1p\nq\n").WritesStdout("line 1\n"),
//	)
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.elv.sh/ed/pkg/must"
	"src.elv.sh/ed/pkg/prog"
)

// Case is a test case for [Test].
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

func quote(s string) string { return "`" + s + "`" }

// ThatEd returns a new Case with the specified CLI arguments. The program
// name is supplied automatically as args[0].
//
// The new Case expects the program run to exit with 0 and write nothing to
// stdout or stderr. These expectations can be altered by calling the other
// methods.
func ThatEd(args ...string) Case {
	return Case{args: append([]string{"ed"}, args...)}
}

// WithStdin returns an altered Case that feeds the given text to the
// program's stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatEd("-s").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to return with
// the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := run(p, c.stdin, c.args)
			if exit != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", exit, c.want.exitCode)
			}
			if !matchOutput(stdout, c.want.stdout) {
				t.Errorf("got stdout %v, want %v", quote(stdout), c.want.stdout)
			}
			if !matchOutput(stderr, c.want.stderr) {
				t.Errorf("got stderr %v, want %v", quote(stderr), c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given stdin and arguments, and returns the exit
// status and the output written to stdout and stderr. Unlike [ThatEd], the
// program name is not supplied automatically.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	return run(p, stdin, args)
}

func run(p prog.Program, stdin string, args []string) (int, string, string) {
	r0, w0 := must.Pipe()
	// Write to stdin in a separate goroutine, since the program may not read
	// all of it, and the input may not fit in the pipe buffer.
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Read stdout and stderr concurrently to avoid deadlocking when the
	// program writes more than the pipe buffer can hold.
	stdoutCh := collect(r1)
	stderrCh := collect(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return exit, <-stdoutCh, <-stderrCh
}

func collect(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}
