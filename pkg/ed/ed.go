// Package ed implements a line-oriented text editor modeled on the classic ed
// utility.
//
// A [Session] keeps a buffer of lines and reads commands from its input, one
// line per cycle. Commands consist of an optional address range and a command
// character; see [ParseAddr] for the address syntax. The session alternates
// between command mode ([Normal]) and text-insertion mode ([Insert]) until it
// reaches [Exit].
package ed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"src.elv.sh/ed/pkg/buffer"
	"src.elv.sh/ed/pkg/logutil"
	"src.elv.sh/ed/pkg/strutil"
)

var logger = logutil.GetLogger("[ed] ")

// Mode is the state of a session.
type Mode int

// Possible values of Mode.
const (
	// Command mode: each input line is a command.
	Normal Mode = iota
	// Text-insertion mode: each input line is inserted into the buffer, until
	// a line consisting of a single ".".
	Insert
	// Terminal state.
	Exit
)

var modeNames = [...]string{Normal: "normal", Insert: "insert", Exit: "exit"}

func (m Mode) String() string {
	if 0 <= m && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Config is the startup configuration of a session.
type Config struct {
	// File to load at startup, and the default target of the w command.
	Filename string
	// Printed before reading each command.
	Prompt string
	// Suppresses byte counts and file diagnostics.
	Suppress bool
	// If not nil, each non-empty command line is recorded to it.
	History History
}

// History is where command lines are recorded. It is satisfied by
// [src.elv.sh/ed/pkg/store.DBStore].
type History interface {
	AddCmd(text string) (int, error)
}

// Session is an editing session.
type Session struct {
	cfg  Config
	buf  *buffer.Buffer
	cur  int
	in   *bufio.Reader
	out  io.Writer
	diag io.Writer
	eof  bool
}

// NewSession creates a new Session with an empty buffer. Commands and text are
// read from in; printed lines and "?" go to out; byte counts of writes and
// file diagnostics go to diag.
func NewSession(in io.Reader, out, diag io.Writer, cfg Config) *Session {
	return &Session{cfg: cfg, buf: &buffer.Buffer{}, cur: 1,
		in: bufio.NewReader(in), out: out, diag: diag}
}

// Buffer returns the buffer of the session.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// CurrentLine returns the current line number. It may be 0 or one past the
// last line.
func (s *Session) CurrentLine() int { return s.cur }

// Load loads the configured file into the buffer and prints its byte count.
// It does nothing if no file is configured. Failing to read the file is not
// fatal: the session continues with an empty buffer.
func (s *Session) Load() {
	if s.cfg.Filename == "" {
		return
	}
	lines, n, err := Load(s.cfg.Filename)
	if err != nil {
		logger.Println("loading file:", err)
		s.diagnose(err)
		return
	}
	logger.Printf("loaded %d lines, %d bytes from %s", len(lines), n, s.cfg.Filename)
	s.buf = buffer.New(lines...)
	if !s.cfg.Suppress {
		fmt.Fprintln(s.out, n)
	}
}

// Run runs the session until it exits, starting in command mode.
func (s *Session) Run() {
	mode := Normal
	for mode != Exit {
		next := s.Step(mode)
		if next != mode {
			logger.Printf("mode %v -> %v", mode, next)
		}
		mode = next
	}
}

// Step runs one interaction cycle in the given mode, and returns the next
// mode.
func (s *Session) Step(mode Mode) Mode {
	switch mode {
	case Normal:
		return s.normal()
	case Insert:
		return s.insert()
	default:
		return Exit
	}
}

func (s *Session) normal() Mode {
	io.WriteString(s.out, s.cfg.Prompt)
	line, ok := s.readLine()
	if !ok {
		return Exit
	}
	if s.cfg.History != nil && strings.TrimLeft(line, spaceChars) != "" {
		if _, err := s.cfg.History.AddCmd(line); err != nil {
			logger.Println("recording command:", err)
		}
	}
	next, err := s.exec(line)
	if err != nil {
		logger.Printf("command %q: %v", line, err)
		fmt.Fprintln(s.out, "?")
	}
	return next
}

func (s *Session) insert() Mode {
	line, ok := s.readLine()
	if !ok {
		return Exit
	}
	if line == "." {
		return Normal
	}
	if err := s.buf.Insert(s.cur+1, line); err != nil {
		logger.Println("inserting line:", err)
		fmt.Fprintln(s.out, "?")
		return Normal
	}
	s.cur++
	return Insert
}

// Reads one line without its terminating newline. A final line without a
// newline is still returned; the next call then reports the end of input.
func (s *Session) readLine() (string, bool) {
	if s.eof {
		return "", false
	}
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			logger.Println("reading input:", err)
		}
		s.eof = true
		if line == "" {
			return "", false
		}
	}
	return strutil.ChopTerminator(line, '\n'), true
}

// Prints a diagnostic for a file error, unless output is suppressed.
func (s *Session) diagnose(err error) {
	if s.cfg.Suppress {
		return
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		fmt.Fprintf(s.diag, "ed: %s: %v\n", pathErr.Path, pathErr.Err)
	} else {
		fmt.Fprintf(s.diag, "ed: %v\n", err)
	}
}
