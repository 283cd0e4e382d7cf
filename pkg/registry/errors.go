package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrCycle        = errors.New("circular dependency")
	ErrInvalidTask  = errors.New("invalid task")
)

// TaskError reports a failure of the task table itself, as opposed to an
// error returned by a task action.
type TaskError struct {
	Task  string
	Chain []string // Invocation path that led to Task, outermost first.
	Err   error
}

func (e *TaskError) Error() string {
	switch {
	case e.Task == "":
		return e.Err.Error()
	case errors.Is(e.Err, ErrCycle):
		return fmt.Sprintf("%v detected: %s", e.Err, strings.Join(e.Chain, " => "))
	case len(e.Chain) > 1:
		return fmt.Sprintf("%v: %q (required by %q)", e.Err, e.Task, e.Chain[len(e.Chain)-2])
	default:
		return fmt.Sprintf("%v: %q", e.Err, e.Task)
	}
}

func (e *TaskError) Unwrap() error { return e.Err }
