package ed

import (
	"errors"
	"math"
	"strings"
)

// Range is a resolved range of line addresses.
type Range struct {
	Start, End int
	// Whether any address was given in the command. When false, Start and End
	// are both the number of lines in the buffer.
	Explicit bool
}

var errBadAddr = errors.New("bad address")

// Characters skipped as whitespace in commands.
const spaceChars = " \t\n\v\f\r"

func skipSpace(s string) string { return strings.TrimLeft(s, spaceChars) }

// ParseAddr parses the address range at the start of cmd against a buffer of
// n lines, and returns the resolved range and the rest of cmd, starting from
// the command character.
//
// An address is either "$" (the last line) or a decimal line number; a range
// is an address optionally followed by "," and another address. Whitespace is
// allowed before the range, before the comma and after the range.
func ParseAddr(cmd string, n int) (Range, string, error) {
	s := skipSpace(cmd)
	r := Range{Start: n, End: n}

	start, rest, ok := parseAddress(s, n)
	if ok {
		// "$" may resolve to 0 for an empty buffer, but a literal 0 is never
		// a valid line.
		if start == 0 && !strings.HasPrefix(s, "$") {
			return Range{}, rest, errBadAddr
		}
		r.Start, r.Explicit, s = start, true, rest
	}
	r.End = r.Start

	s = skipSpace(s)
	if strings.HasPrefix(s, ",") {
		r.Explicit = true
		s = s[1:]
		if end, rest, ok := parseAddress(s, n); ok {
			r.End, s = end, rest
		}
		if r.End == 0 {
			return Range{}, s, errBadAddr
		}
	}

	s = skipSpace(s)
	if r.Start > r.End || r.End > n {
		return Range{}, s, errBadAddr
	}
	return r, s, nil
}

// Parses a single address at the start of s.
func parseAddress(s string, n int) (int, string, bool) {
	if strings.HasPrefix(s, "$") {
		return n, s[1:], true
	}
	i, num := 0, 0
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if num > (math.MaxInt-d)/10 {
			num = math.MaxInt
		} else {
			num = num*10 + d
		}
	}
	if i == 0 {
		return 0, s, false
	}
	return num, s[i:], true
}
