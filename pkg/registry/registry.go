package registry

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/bundleaudit/internal/logging"
	"github.com/aretw0/bundleaudit/pkg/domain"
)

// Task is a read-only view of a registered task.
type Task struct {
	Name          string
	Description   string
	Prerequisites []string
	Actions       int
}

// IsAlias reports whether the task only points at other tasks.
func (t Task) IsAlias() bool {
	return t.Actions == 0 && len(t.Prerequisites) > 0
}

type entry struct {
	description   string
	prerequisites []string
	actions       []domain.Action
}

// Registry is the host task table.
// It is written once at startup and read by every invocation.
type Registry struct {
	mu     sync.RWMutex
	tasks  map[string]*entry
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option configures the Registry.
type Option func(*Registry)

// WithLogger sets a structured logger for the registry.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks fired around every action.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Registry) {
		r.hooks = hooks
	}
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		tasks:  make(map[string]*entry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Define adds tasks to the registry.
// Defining a name that already exists enhances it: the action is appended,
// unseen prerequisites are appended and a non-empty description replaces the old one.
// Prerequisites may name tasks that are defined later.
func (r *Registry) Define(defs ...domain.TaskDef) error {
	for _, def := range defs {
		if def.Name == "" {
			return &TaskError{Err: fmt.Errorf("%w: name is required", ErrInvalidTask)}
		}
		if slices.Contains(def.Prerequisites, def.Name) {
			return &TaskError{Task: def.Name, Chain: []string{def.Name, def.Name}, Err: ErrCycle}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, def := range defs {
		e, ok := r.tasks[def.Name]
		if !ok {
			e = &entry{}
			r.tasks[def.Name] = e
		}
		if def.Description != "" {
			e.description = def.Description
		}
		for _, pre := range def.Prerequisites {
			if !slices.Contains(e.prerequisites, pre) {
				e.prerequisites = append(e.prerequisites, pre)
			}
		}
		if def.Action != nil {
			e.actions = append(e.actions, def.Action)
		}
		r.logger.Debug("Task Defined", "task", def.Name, "prerequisites", def.Prerequisites, "enhanced", ok)
	}
	return nil
}

// Lookup returns the named task.
func (r *Registry) Lookup(name string) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.tasks[name]
	if !ok {
		return Task{}, false
	}
	return view(name, e), true
}

// Tasks returns every registered task sorted by name.
func (r *Registry) Tasks() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Task, 0, len(r.tasks))
	for name, e := range r.tasks {
		out = append(out, view(name, e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Invoke runs the named task after its prerequisites.
// Prerequisites run depth-first in declaration order and every task runs at
// most once per call. args are handed to every action reached.
// The first action error stops the invocation and is returned unchanged.
func (r *Registry) Invoke(ctx context.Context, name string, args ...string) error {
	inv := &invocation{
		done:   make(map[string]bool),
		active: make(map[string]bool),
		args:   slices.Clone(args),
	}
	return r.invoke(ctx, inv, name, nil)
}

type invocation struct {
	done   map[string]bool
	active map[string]bool
	args   []string
}

func (r *Registry) invoke(ctx context.Context, inv *invocation, name string, chain []string) error {
	if inv.done[name] {
		return nil
	}
	chain = append(slices.Clone(chain), name)
	if inv.active[name] {
		return &TaskError{Task: name, Chain: chain, Err: ErrCycle}
	}

	r.mu.RLock()
	e, ok := r.tasks[name]
	var prerequisites []string
	var actions []domain.Action
	if ok {
		prerequisites = slices.Clone(e.prerequisites)
		actions = slices.Clone(e.actions)
	}
	r.mu.RUnlock()

	if !ok {
		return &TaskError{Task: name, Chain: chain, Err: ErrTaskNotFound}
	}

	inv.active[name] = true
	for _, pre := range prerequisites {
		if err := r.invoke(ctx, inv, pre, chain); err != nil {
			return err
		}
	}
	delete(inv.active, name)
	inv.done[name] = true

	for _, action := range actions {
		if err := r.execute(ctx, name, action, inv.args); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) execute(ctx context.Context, name string, action domain.Action, args []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("task %q not started: %w", name, err)
	}

	r.logger.Debug("Task Start", "task", name, "args", args)
	if r.hooks.OnTaskStart != nil {
		r.hooks.OnTaskStart(ctx, &domain.TaskEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTaskStart},
			Task:      name,
			Args:      args,
		})
	}

	start := time.Now()
	err := action(ctx, slices.Clone(args))
	elapsed := time.Since(start)

	if err != nil {
		r.logger.Debug("Task Failed", "task", name, "err", err, "duration", elapsed)
	} else {
		r.logger.Debug("Task Finished", "task", name, "duration", elapsed)
	}
	if r.hooks.OnTaskFinish != nil {
		r.hooks.OnTaskFinish(ctx, &domain.TaskEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTaskFinish},
			Task:      name,
			Args:      args,
			Duration:  elapsed,
			Err:       err,
		})
	}
	return err
}

func view(name string, e *entry) Task {
	return Task{
		Name:          name,
		Description:   e.description,
		Prerequisites: slices.Clone(e.prerequisites),
		Actions:       len(e.actions),
	}
}
