// Package buffer implements the line buffer of the editor.
//
// A Buffer is an ordered sequence of lines, stored without their line
// endings. All positions in the API are 1-based, matching the addresses of the
// command language.
package buffer

import "fmt"

// Buffer is an ordered, mutable sequence of lines. The zero value is an empty
// buffer ready to use. A Buffer must not be used concurrently.
type Buffer struct {
	lines []string
}

// New returns a Buffer containing the given lines.
func New(lines ...string) *Buffer {
	return &Buffer{lines: append([]string(nil), lines...)}
}

// Len returns the number of lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Line returns line i.
func (b *Buffer) Line(i int) (string, error) {
	if i < 1 || i > len(b.lines) {
		return "", OutOfRange{What: "line number", ValidLow: 1, ValidHigh: len(b.lines), Actual: i}
	}
	return b.lines[i-1], nil
}

// Lines returns a copy of all the lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Insert inserts line so that it becomes line i. Lines starting from the old
// line i are shifted down by one; i may be Len()+1 to append.
func (b *Buffer) Insert(i int, line string) error {
	if i < 1 || i > len(b.lines)+1 {
		return OutOfRange{What: "insert position", ValidLow: 1, ValidHigh: len(b.lines) + 1, Actual: i}
	}
	b.lines = append(b.lines, "")
	copy(b.lines[i:], b.lines[i-1:])
	b.lines[i-1] = line
	return nil
}

// Remove removes count lines starting from line start. Lines after the removed
// range are shifted up. Removing zero lines is always a no-op.
func (b *Buffer) Remove(start, count int) error {
	if count == 0 {
		return nil
	}
	if count < 0 {
		return OutOfRange{What: "line count", ValidLow: 0, ValidHigh: len(b.lines), Actual: count}
	}
	if start < 1 || start+count-1 > len(b.lines) {
		return OutOfRange{What: "start line", ValidLow: 1, ValidHigh: len(b.lines) - count + 1, Actual: start}
	}
	n := copy(b.lines[start-1:], b.lines[start-1+count:])
	// Clear the tail so that removed lines can be garbage collected.
	for i := start - 1 + n; i < len(b.lines); i++ {
		b.lines[i] = ""
	}
	b.lines = b.lines[:len(b.lines)-count]
	return nil
}

// OutOfRange encodes an error where a position or count is out of its valid
// range.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf("out of range: %v has no valid value, but is %v",
			e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %v must be from %v to %v, but is %v",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}
