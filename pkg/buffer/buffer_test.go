package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"src.elv.sh/ed/pkg/tt"
)

var (
	It   = tt.It
	Args = tt.Args
)

func TestLine(t *testing.T) {
	b := New("x", "y")
	tt.Test(t, tt.Fn(b.Line).Named("Line"),
		Args(1).Rets("x", nil),
		Args(2).Rets("y", nil),
		It("rejects 0").Args(0).
			Rets("", OutOfRange{What: "line number", ValidLow: 1, ValidHigh: 2, Actual: 0}),
		It("rejects past the end").Args(3).
			Rets("", OutOfRange{What: "line number", ValidLow: 1, ValidHigh: 2, Actual: 3}),
	)
}

func TestLine_EmptyBuffer(t *testing.T) {
	var b Buffer
	if _, err := b.Line(1); err == nil {
		t.Errorf("Line(1) on empty buffer -> nil error")
	}
	if b.Len() != 0 {
		t.Errorf("zero Buffer has Len %d", b.Len())
	}
}

var insertTests = []struct {
	name    string
	initial []string
	i       int
	line    string
	want    []string
	wantErr bool
}{
	{"into empty buffer", nil, 1, "a", []string{"a"}, false},
	{"at the beginning", []string{"a", "b"}, 1, "x", []string{"x", "a", "b"}, false},
	{"in the middle", []string{"a", "b"}, 2, "x", []string{"a", "x", "b"}, false},
	{"at the end", []string{"a", "b"}, 3, "x", []string{"a", "b", "x"}, false},
	{"at 0", []string{"a"}, 0, "x", []string{"a"}, true},
	{"past the end", []string{"a"}, 3, "x", []string{"a"}, true},
}

func TestInsert(t *testing.T) {
	for _, test := range insertTests {
		t.Run(test.name, func(t *testing.T) {
			b := New(test.initial...)
			err := b.Insert(test.i, test.line)
			if (err != nil) != test.wantErr {
				t.Errorf("got error %v, want error %v", err, test.wantErr)
			}
			if diff := cmp.Diff(test.want, b.Lines()); diff != "" {
				t.Errorf("lines (-want +got):\n%s", diff)
			}
		})
	}
}

var removeTests = []struct {
	name    string
	initial []string
	start   int
	count   int
	want    []string
	wantErr bool
}{
	{"first line", []string{"x", "y"}, 1, 1, []string{"y"}, false},
	{"last line", []string{"x", "y"}, 2, 1, []string{"x"}, false},
	{"middle range", []string{"a", "b", "c", "d"}, 2, 2, []string{"a", "d"}, false},
	{"everything", []string{"a", "b"}, 1, 2, []string{}, false},
	{"zero lines", []string{"a"}, 1, 0, []string{"a"}, false},
	{"zero lines out of range", []string{"a"}, 5, 0, []string{"a"}, false},
	{"range past the end", []string{"a", "b"}, 2, 2, []string{"a", "b"}, true},
	{"start at 0", []string{"a", "b"}, 0, 1, []string{"a", "b"}, true},
	{"negative count", []string{"a", "b"}, 1, -1, []string{"a", "b"}, true},
}

func TestRemove(t *testing.T) {
	for _, test := range removeTests {
		t.Run(test.name, func(t *testing.T) {
			b := New(test.initial...)
			err := b.Remove(test.start, test.count)
			if (err != nil) != test.wantErr {
				t.Errorf("got error %v, want error %v", err, test.wantErr)
			}
			if diff := cmp.Diff(test.want, b.Lines(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("lines (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemove_ShiftsFollowingLines(t *testing.T) {
	b := New("1", "2", "3", "4", "5", "6")
	if err := b.Remove(2, 3); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 3 {
		t.Errorf("Len -> %d, want 3", b.Len())
	}
	tt.Test(t, tt.Fn(b.Line).Named("Line"),
		Args(1).Rets("1", nil),
		Args(2).Rets("5", nil),
		Args(3).Rets("6", nil),
	)
}

func TestNew_CopiesLines(t *testing.T) {
	lines := []string{"a", "b"}
	b := New(lines...)
	lines[0] = "changed"
	if got, _ := b.Line(1); got != "a" {
		t.Errorf("New shares the slice with its argument")
	}

	out := b.Lines()
	out[1] = "changed"
	if got, _ := b.Line(2); got != "b" {
		t.Errorf("Lines shares the slice with the buffer")
	}
}

func TestOutOfRange_Error(t *testing.T) {
	tt.Test(t, tt.Fn(OutOfRange.Error),
		Args(OutOfRange{What: "line number", ValidLow: 1, ValidHigh: 2, Actual: 3}).
			Rets("out of range: line number must be from 1 to 2, but is 3"),
		Args(OutOfRange{What: "line number", ValidLow: 1, ValidHigh: 0, Actual: 1}).
			Rets("out of range: line number has no valid value, but is 1"),
	)
}
