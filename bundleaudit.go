package bundleaudit

import (
	"context"

	"github.com/aretw0/bundleaudit/pkg/domain"
	"github.com/aretw0/bundleaudit/pkg/ports"
)

// Version is overridden at build time with -ldflags "-X github.com/aretw0/bundleaudit.Version=...".
var Version = "dev"

// Canonical task names.
const (
	TaskAudit  = "bundle:audit"
	TaskCheck  = "bundle:audit:check"
	TaskUpdate = "bundle:audit:update"
)

// Legacy aliases kept for projects that still call the bundler:* names.
const (
	LegacyTaskAudit  = "bundler:audit"
	LegacyTaskCheck  = "bundler:audit:check"
	LegacyTaskUpdate = "bundler:audit:update"
)

const (
	checkDescription  = "Checks the Gemfile.lock for insecure dependencies"
	updateDescription = "Updates the bundler-audit vulnerability database"
)

// Task defines the bundle:audit tasks on top of a ProcessRunner.
type Task struct {
	runner ports.ProcessRunner
}

// NewTask creates the audit tasks. Nothing is registered until Define is called.
func NewTask(runner ports.ProcessRunner) *Task {
	return &Task{runner: runner}
}

// Check runs `bundler-audit check` with the extra arguments.
func (t *Task) Check(ctx context.Context, extra ...string) error {
	return t.runner.Invoke(ctx, domain.SubcommandCheck, extra...)
}

// Update runs `bundler-audit update` with the extra arguments.
func (t *Task) Update(ctx context.Context, extra ...string) error {
	return t.runner.Invoke(ctx, domain.SubcommandUpdate, extra...)
}

// Definitions returns the task table: the two canonical tasks followed by their aliases.
func (t *Task) Definitions() []domain.TaskDef {
	return []domain.TaskDef{
		{
			Name:        TaskCheck,
			Description: checkDescription,
			Action: func(ctx context.Context, args []string) error {
				return t.Check(ctx, args...)
			},
		},
		{
			Name:        TaskUpdate,
			Description: updateDescription,
			Action: func(ctx context.Context, args []string) error {
				return t.Update(ctx, args...)
			},
		},
		{Name: TaskAudit, Prerequisites: []string{TaskCheck}},
		{Name: LegacyTaskAudit, Prerequisites: []string{TaskAudit}},
		{Name: LegacyTaskCheck, Prerequisites: []string{TaskCheck}},
		{Name: LegacyTaskUpdate, Prerequisites: []string{TaskUpdate}},
	}
}

// Define registers the task table with the host.
func (t *Task) Define(r ports.Registrar) error {
	return r.Define(t.Definitions()...)
}
