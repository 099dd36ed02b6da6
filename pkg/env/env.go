// Package env keeps names of environment variables with special significance to
// ed.
package env

// Environment variables with special significance to ed.
const (
	HOME            = "HOME"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
)
