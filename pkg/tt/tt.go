// Package tt supports table-driven tests with little boilerplate.
//
// A typical use looks like:
//
//	tt.Test(t, tt.Fn(ParseAddr),
//		It("parses a single number").Args("2p", 3).Rets(Range{2, 2, true}, "p", nil),
//	)
//
// See the test file of this package for more examples.
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Case is a test case, created by It or Args and augmented with chained
// calls to Args and Rets.
type Case struct {
	desc     string
	args     []any
	retsMats [][]any
}

// It returns a new Case with the given description.
func It(desc string) *Case { return &Case{desc: desc} }

// Args returns a new Case with the given arguments and no description.
func Args(args ...any) *Case { return &Case{args: args} }

// Args sets the arguments of the Case and returns it.
func (c *Case) Args(args ...any) *Case {
	c.args = args
	return c
}

// Rets adds a requirement on the return values of the Case and returns it.
// Each argument may be a Matcher, in which case its Match method decides
// whether the corresponding return value matches; otherwise the values are
// compared with cmp.Equal.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMats = append(c.retsMats, matchers)
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
	retsFmt string
}

// Fn makes a FnToTest from a function. The name defaults to the name of the
// function as found by the runtime, which can be overridden with Named.
func Fn(body any) *FnToTest {
	return &FnToTest{name: funcName(body), body: body}
}

// Named sets the name of the function and returns fn.
func (fn *FnToTest) Named(name string) *FnToTest {
	fn.name = name
	return fn
}

// ArgsFmt sets the format string for arguments in error messages and returns
// fn.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// RetsFmt sets the format string for return values in error messages and
// returns fn.
func (fn *FnToTest) RetsFmt(s string) *FnToTest {
	fn.retsFmt = s
	return fn
}

// T is the subset of testing.TB used by Test.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases.
func Test(t T, fn *FnToTest, tests ...*Case) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		for _, mats := range test.retsMats {
			if match(mats, rets) {
				continue
			}
			var desc string
			if test.desc != "" {
				desc = test.desc + ": "
			}
			var argsString string
			if fn.argsFmt == "" {
				argsString = sprintCommaDelimited(test.args...)
			} else {
				argsString = fmt.Sprintf(fn.argsFmt, test.args...)
			}
			if fn.retsFmt == "" {
				t.Errorf("%s%s(%s) returns (-want +got):\n%s", desc, fn.name,
					argsString, cmp.Diff(mats, rets, cmpopt))
			} else {
				t.Errorf("%s%s(%s) returns %s, want %s", desc, fn.name, argsString,
					fmt.Sprintf(fn.retsFmt, rets...), fmt.Sprintf(fn.retsFmt, mats...))
			}
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

// ErrorMatching returns a Matcher that matches any non-nil error whose message
// contains s.
func ErrorMatching(s string) Matcher { return errorMatcher{s} }

type errorMatcher struct{ substr string }

func (m errorMatcher) Match(v RetValue) bool {
	err, ok := v.(error)
	return ok && err != nil && strings.Contains(err.Error(), m.substr)
}

// Errors and matchers are compared by their own rules; everything else by its
// exported and unexported fields.
var cmpopt = cmp.Exporter(func(reflect.Type) bool { return true })

func match(matchers, actual []any) bool {
	if len(matchers) != len(actual) {
		return false
	}
	for i, m := range matchers {
		if !matchOne(m, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	switch m := m.(type) {
	case Matcher:
		return m.Match(a)
	case error:
		err, ok := a.(error)
		return ok && err != nil && (m == err || m.Error() == err.Error())
	}
	return cmp.Equal(m, a, cmpopt)
}

func sprintCommaDelimited(args ...any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%#v", arg)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	fnType := reflect.TypeOf(fn)
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) is the zero Value; use the zero value of
			// the parameter type instead.
			argsReflect[i] = reflect.Zero(paramType(fnType, i))
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}

func paramType(fnType reflect.Type, i int) reflect.Type {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(i)
}
