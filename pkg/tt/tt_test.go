package tt

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// testT implements the T interface and is used to verify the Test function's
// interaction with T.
type testT []string

func (t *testT) Helper() {}

func (t *testT) Errorf(format string, args ...any) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

// Simple functions to test.

func add(x, y int) int {
	return x + y
}

func addsub(x int, y int) (int, int) {
	return x + y, x - y
}

func div(x, y int) (int, error) {
	if y == 0 {
		return 0, errors.New("division by zero")
	}
	return x / y, nil
}

func TestTTPass(t *testing.T) {
	var testT testT
	Test(&testT, Fn(addsub),
		It("adds and subtracts").Args(1, 10).Rets(11, -9),
		Args(2, 1).Rets(3, 1),
	)
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %v", testT)
	}
}

func TestTTFailDefaultFmt(t *testing.T) {
	var testT testT
	Test(&testT, Fn(add), Args(1, 10).Rets(12))
	assertOneError(t, testT, "add(1, 10) returns (-want +got):\n")
}

func TestTTFailWithDescription(t *testing.T) {
	var testT testT
	Test(&testT, Fn(add).Named("plus"), It("adds").Args(1, 10).Rets(12))
	assertOneError(t, testT, "adds: plus(1, 10) returns (-want +got):\n")
}

func TestTTFailCustomFmt(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn(addsub).ArgsFmt("x = %d, y = %d").RetsFmt("(a = %d, b = %d)"),
		Args(1, 10).Rets(11, -90))
	assertOneError(t, testT,
		"addsub(x = 1, y = 10) returns (a = 11, b = -9), want (a = 11, b = -90)")
}

func TestTTMatchers(t *testing.T) {
	var testT testT
	Test(&testT, Fn(div),
		Args(6, 3).Rets(2, nil),
		Args(6, 0).Rets(Any, ErrorMatching("by zero")),
		Args(6, 0).Rets(0, errors.New("division by zero")),
	)
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %v", testT)
	}

	testT = nil
	Test(&testT, Fn(div), Args(6, 3).Rets(Any, ErrorMatching("by zero")))
	if len(testT) != 1 {
		t.Errorf("want one error, got %v", testT)
	}
}

func assertOneError(t *testing.T, testT testT, wantPrefix string) {
	t.Helper()
	switch len(testT) {
	case 0:
		t.Errorf("Test didn't error when it should")
	case 1:
		if !strings.HasPrefix(testT[0], wantPrefix) {
			t.Errorf("Test wrote message %q, want prefix %q", testT[0], wantPrefix)
		}
	default:
		t.Errorf("Test wrote too many error messages: %v", testT)
	}
}
