//go:build !windows && !plan9

// Package eunix provides extra Unix-specific system utilities.
package eunix

import "golang.org/x/sys/unix"

// SetEcho turns the echoing of input characters on the terminal fd on or off.
func SetEcho(fd int, echo bool) error {
	term, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		return err
	}
	if echo {
		term.Lflag |= unix.ECHO
	} else {
		term.Lflag &^= unix.ECHO
	}
	return unix.IoctlSetTermios(fd, setAttrNowIOCTL, term)
}

// Echo reports whether the terminal fd echoes input characters.
func Echo(fd int) (bool, error) {
	term, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		return false, err
	}
	return term.Lflag&unix.ECHO != 0, nil
}
