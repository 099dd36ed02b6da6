package ed

import (
	"bufio"
	"os"
	"strings"

	"src.elv.sh/ed/pkg/errutil"
)

// Load reads the named file and splits it into lines on "\n". A final line
// without a terminating "\n" is kept. It also returns the size of the file in
// bytes, including line separators.
func Load(name string) ([]string, int, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, 0, err
	}
	return splitLines(string(data)), len(data), nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		// The file ends with "\n".
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Save writes lines to the named file, each followed by "\n", truncating the
// file if it exists. It returns the number of bytes written.
func Save(name string, lines []string) (n int, err error) {
	f, err := os.Create(name)
	if err != nil {
		return 0, err
	}
	defer func() { err = errutil.Multi(err, f.Close()) }()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		m, err := w.WriteString(line)
		n += m
		if err != nil {
			return n, err
		}
		if err := w.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, w.Flush()
}
