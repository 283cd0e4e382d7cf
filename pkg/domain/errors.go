package domain

import (
	"errors"
	"fmt"
)

// ErrCommandNotFound is matched by every CommandNotFoundError.
var ErrCommandNotFound = errors.New("command not found")

// CommandNotFoundError is returned when the external tool could not be
// located or started. It never means the scan itself failed.
type CommandNotFoundError struct {
	Command string
	Err     error
}

func (e *CommandNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s could not be executed", e.Command)
	}
	return fmt.Sprintf("%s could not be executed: %v", e.Command, e.Err)
}

func (e *CommandNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCommandNotFound}
	}
	return []error{ErrCommandNotFound, e.Err}
}

// HaltError asks the outermost boundary to terminate the process with Code.
// It is produced when the external tool exits with a non-zero status.
type HaltError struct {
	Command    string
	Subcommand string
	Code       int
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("%s %s exited with status %d", e.Command, e.Subcommand, e.Code)
}

// HaltCode extracts the exit code requested by a HaltError anywhere in err's chain.
func HaltCode(err error) (int, bool) {
	var halt *HaltError
	if errors.As(err, &halt) {
		return halt.Code, true
	}
	return 0, false
}
