// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// Multi combines errors into one. Nil errors are dropped; if no error
// remains, Multi returns nil, and if exactly one remains, it is returned
// unchanged. Errors returned by Multi are flattened when passed to Multi
// again, so Multi(Multi(e1, e2), e3) is the same as Multi(e1, e2, e3).
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case multiError:
			nonNil = append(nonNil, err...)
		default:
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return multiError(nonNil)
	}
}

type multiError []error

func (me multiError) Error() string {
	msgs := make([]string, len(me))
	for i, err := range me {
		msgs[i] = err.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}
