package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const stdinName = "-"

// readInput reads the named file, or stdin when no name or "-" is given.
func readInput(args []string, stdin io.Reader) (name string, data []byte, err error) {
	name = stdinName
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		name = args[0]
	}
	if name == stdinName {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return name, nil, fmt.Errorf("read stdin: %w", err)
		}
		return name, data, nil
	}
	data, err = os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return name, nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return name, nil, fmt.Errorf("read %s: %w", name, err)
	}
	return name, data, nil
}

func openInput(name string) (*os.File, error) {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}
