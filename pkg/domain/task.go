package domain

import "context"

// Action is the work attached to a task.
// It receives the extra arguments the task was invoked with.
type Action func(ctx context.Context, args []string) error

// TaskDef describes a task to be registered in a host task table.
// A TaskDef without an Action is an alias: running it only runs its prerequisites.
type TaskDef struct {
	Name          string
	Description   string
	Prerequisites []string
	Action        Action
}

// IsAlias reports whether the definition only points at other tasks.
func (d TaskDef) IsAlias() bool {
	return d.Action == nil && len(d.Prerequisites) > 0
}
