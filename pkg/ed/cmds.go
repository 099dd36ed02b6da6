package ed

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errEmptyBuffer = errors.New("no lines in buffer")
	errNoFilename  = errors.New("no current filename")
)

type unknownCmdError byte

func (e unknownCmdError) Error() string {
	return fmt.Sprintf("unknown command %q", byte(e))
}

// Executes a command line and returns the next mode. When the command is
// rejected, the returned error describes why.
func (s *Session) exec(line string) (Mode, error) {
	cmd := skipSpace(line)
	switch {
	case cmd == "":
		return Normal, s.printCurrent()
	case cmd[0] == '#':
		return Normal, nil
	case cmd[0] == 'w':
		return s.write(cmd[1:])
	}

	r, rest, err := ParseAddr(cmd, s.buf.Len())
	if err != nil {
		return Normal, err
	}
	if rest == "" {
		return Normal, s.printAddressed(r.Start)
	}

	// Anything after the command character is ignored.
	switch c := rest[0]; c {
	case 'p':
		return Normal, s.print(r)
	case 'a':
		s.cur = s.anchor(r)
		if s.cur > s.buf.Len() {
			// Past the end; append.
			s.cur = s.buf.Len()
		}
		return Insert, nil
	case 'i':
		s.cur = s.anchor(r) - 1
		if s.cur < 0 {
			s.cur = 0
		}
		return Insert, nil
	case 'd':
		return Normal, s.delete(r)
	case 'c':
		if err := s.change(r); err != nil {
			return Normal, err
		}
		return Insert, nil
	case 'q':
		return Exit, nil
	default:
		return Normal, unknownCmdError(c)
	}
}

// Returns the line a and i work relative to: the addressed line, or the
// current line when no address is given.
func (s *Session) anchor(r Range) int {
	if r.Explicit {
		return r.Start
	}
	return s.cur
}

// Prints the current line and advances past it.
func (s *Session) printCurrent() error {
	line, err := s.buf.Line(s.cur)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, line)
	s.cur++
	return nil
}

// Prints a line selected by a bare address; the following line becomes
// current.
func (s *Session) printAddressed(i int) error {
	line, err := s.buf.Line(i)
	if err != nil {
		return err
	}
	s.cur = i + 1
	fmt.Fprintln(s.out, line)
	return nil
}

func (s *Session) print(r Range) error {
	if s.buf.Len() == 0 {
		return errEmptyBuffer
	}
	for i := r.Start; i <= r.End; i++ {
		line, err := s.buf.Line(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, line)
	}
	return nil
}

func (s *Session) delete(r Range) error {
	if r.Start == 0 {
		return errEmptyBuffer
	}
	if err := s.buf.Remove(r.Start, r.End-r.Start+1); err != nil {
		return err
	}
	s.cur = r.Start - 1
	return nil
}

// Only the first line of the range is replaced.
func (s *Session) change(r Range) error {
	if r.Start == 0 {
		return errEmptyBuffer
	}
	if err := s.buf.Remove(r.Start, 1); err != nil {
		return err
	}
	s.cur = r.Start - 1
	return nil
}

// Implements "w" and "wq"; arg is what follows the "w". The "wq" command exits
// even if writing fails.
func (s *Session) write(arg string) (Mode, error) {
	next := Normal
	if strings.HasPrefix(arg, "q") {
		next, arg = Exit, arg[1:]
	}
	name := skipSpace(arg)
	if name == "" {
		name = s.cfg.Filename
	}
	if name == "" {
		return next, errNoFilename
	}
	n, err := Save(name, s.buf.Lines())
	if err != nil {
		s.diagnose(err)
		return next, err
	}
	logger.Printf("wrote %d lines, %d bytes to %s", s.buf.Len(), n, name)
	if !s.cfg.Suppress {
		fmt.Fprintln(s.diag, n)
	}
	return next, nil
}
