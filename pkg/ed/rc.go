package ed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"src.elv.sh/ed/pkg/env"
)

// RC keeps the settings read from the rc file. Settings given as flags take
// precedence.
//
// An example rc file:
//
//	prompt: "* "
//	suppress: false
//	histdb: ~/.local/state/ed/history.db
type RC struct {
	// Nil when not set, so that an explicit empty prompt can be told apart.
	Prompt   *string `yaml:"prompt"`
	Suppress *bool   `yaml:"suppress"`
	HistDB   string  `yaml:"histdb"`
}

// RCPath returns the default path of the rc file: ed/rc.yaml under
// $XDG_CONFIG_HOME, or under ~/.config if $XDG_CONFIG_HOME is not set.
func RCPath() (string, error) {
	if dir := os.Getenv(env.XDG_CONFIG_HOME); dir != "" {
		return filepath.Join(dir, "ed", "rc.yaml"), nil
	}
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(home, ".config", "ed", "rc.yaml"), nil
}

// ReadRC reads and parses an rc file. Unknown keys are errors. An empty file
// yields an empty RC.
func ReadRC(name string) (*RC, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var rc RC
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if rc.HistDB != "" {
		rc.HistDB, err = expandTilde(rc.HistDB)
		if err != nil {
			return nil, fmt.Errorf("%s: histdb: %w", name, err)
		}
	}
	return &rc, nil
}

func homeDir() (string, error) {
	if home := os.Getenv(env.HOME); home != "" {
		return home, nil
	}
	return os.UserHomeDir()
}

// Expands a leading "~/" to the home directory.
func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return home + path[1:], nil
}
