package domain

import (
	"fmt"
	"slices"
	"strings"
)

// OutcomeKind discriminates the result of launching the external tool.
type OutcomeKind int

const (
	// OutcomeSuccess means the process started and exited with status zero.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeExit means the process started and exited with a non-zero status.
	OutcomeExit
	// OutcomeLaunchFailed means the process could not be located or started.
	OutcomeLaunchFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeExit:
		return "exit"
	case OutcomeLaunchFailed:
		return "launch_failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the result of a single run of the external tool.
type Outcome struct {
	Kind OutcomeKind
	Code int   // Exit status. Only meaningful for OutcomeExit.
	Err  error // Launch error. Only meaningful for OutcomeLaunchFailed.
}

// Success returns a successful outcome.
func Success() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

// Exited returns an outcome for a process that exited with a non-zero status.
func Exited(code int) Outcome {
	return Outcome{Kind: OutcomeExit, Code: code}
}

// LaunchFailed returns an outcome for a process that never ran.
func LaunchFailed(err error) Outcome {
	return Outcome{Kind: OutcomeLaunchFailed, Err: err}
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeExit:
		return fmt.Sprintf("exit status %d", o.Code)
	case OutcomeLaunchFailed:
		return fmt.Sprintf("launch failed: %v", o.Err)
	default:
		return o.Kind.String()
	}
}

// Invocation is the command and argument vector passed to the external tool.
// The zero value is not useful; build one with NewInvocation.
type Invocation struct {
	Command string
	args    []string
}

// NewInvocation builds the argument vector [subcommand] ++ extra.
func NewInvocation(command, subcommand string, extra ...string) Invocation {
	args := make([]string, 0, len(extra)+1)
	args = append(args, subcommand)
	args = append(args, extra...)
	return Invocation{Command: command, args: args}
}

// Subcommand returns the first argument.
func (i Invocation) Subcommand() string {
	if len(i.args) == 0 {
		return ""
	}
	return i.args[0]
}

// Args returns a copy of the argument vector.
func (i Invocation) Args() []string {
	return slices.Clone(i.args)
}

func (i Invocation) String() string {
	return strings.Join(append([]string{i.Command}, i.args...), " ")
}
