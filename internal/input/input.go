// Package input gathers game text from files or standard input.
package input

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Stdin is the file name that stands for standard input.
const Stdin = "-"

// Read returns the contents of every named file joined by newlines. The name
// "-" reads from stdin. With no names, stdin is read.
func Read(names []string, stdin io.Reader) (string, error) {
	if len(names) == 0 {
		names = []string{Stdin}
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		text, err := readOne(name, stdin)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}

func readOne(name string, stdin io.Reader) (string, error) {
	if name == Stdin {
		if stdin == nil {
			return "", errors.New("reading stdin: no reader")
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(b), nil
	}

	b, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	return string(b), nil
}
