package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/odysseus0/mailmd/internal/render"
	"github.com/odysseus0/mailmd/internal/source"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	exitInvalidInput = 2
	exitNotFound     = 3
	exitInternal     = 1
)

func ErrorExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case isInvalidInput(err):
		return exitInvalidInput
	case errors.Is(err, ErrNotFound):
		return exitNotFound
	default:
		return exitInternal
	}
}

func FormatError(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case isInvalidInput(err):
		return fmt.Sprintf("Error [invalid-input]: %v", err)
	case errors.Is(err, ErrNotFound):
		return fmt.Sprintf("Error [not-found]: %v", err)
	default:
		return fmt.Sprintf("Error [internal]: %v", err)
	}
}

func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, FormatError(err))
}

func isInvalidInput(err error) bool {
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, render.ErrUnknownEngine) || errors.Is(err, source.ErrNoBody) {
		return true
	}
	msg := strings.ToLower(err.Error())
	// cobra reports argument and flag errors as plain strings.
	return strings.Contains(msg, "invalid output format") ||
		strings.Contains(msg, "unknown flag") ||
		strings.Contains(msg, "accepts ")
}
