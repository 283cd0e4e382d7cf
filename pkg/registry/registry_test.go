package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/bundleaudit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects the order in which actions ran.
type recorder struct {
	calls []string
	args  [][]string
}

func (rec *recorder) action(name string, err error) domain.Action {
	return func(_ context.Context, args []string) error {
		rec.calls = append(rec.calls, name)
		rec.args = append(rec.args, args)
		return err
	}
}

func TestRegistry_Define(t *testing.T) {
	t.Run("Lookup And Tasks", func(t *testing.T) {
		rec := &recorder{}
		r := NewRegistry()
		require.NoError(t, r.Define(
			domain.TaskDef{Name: "b", Description: "Second", Action: rec.action("b", nil)},
			domain.TaskDef{Name: "a", Prerequisites: []string{"b"}},
		))

		b, ok := r.Lookup("b")
		require.True(t, ok)
		assert.Equal(t, "Second", b.Description)
		assert.Equal(t, 1, b.Actions)
		assert.False(t, b.IsAlias())

		a, ok := r.Lookup("a")
		require.True(t, ok)
		assert.True(t, a.IsAlias())

		_, ok = r.Lookup("c")
		assert.False(t, ok)

		tasks := r.Tasks()
		require.Len(t, tasks, 2)
		assert.Equal(t, "a", tasks[0].Name)
		assert.Equal(t, "b", tasks[1].Name)
		assert.Empty(t, rec.calls, "defining must not run anything")
	})

	t.Run("Duplicate Definitions Enhance", func(t *testing.T) {
		rec := &recorder{}
		r := NewRegistry()
		require.NoError(t, r.Define(domain.TaskDef{Name: "t", Description: "First", Prerequisites: []string{"p"}, Action: rec.action("one", nil)}))
		require.NoError(t, r.Define(domain.TaskDef{Name: "t", Prerequisites: []string{"p", "q"}, Action: rec.action("two", nil)}))

		task, _ := r.Lookup("t")
		assert.Equal(t, "First", task.Description)
		assert.Equal(t, []string{"p", "q"}, task.Prerequisites)
		assert.Equal(t, 2, task.Actions)
	})

	t.Run("Rejects Empty Name", func(t *testing.T) {
		err := NewRegistry().Define(domain.TaskDef{})
		assert.ErrorIs(t, err, ErrInvalidTask)
		assert.Equal(t, "invalid task: name is required", err.Error())
	})

	t.Run("Rejects Self Prerequisite", func(t *testing.T) {
		r := NewRegistry()
		err := r.Define(domain.TaskDef{Name: "loop", Prerequisites: []string{"loop"}})
		assert.ErrorIs(t, err, ErrCycle)
		assert.Empty(t, r.Tasks())
	})

	t.Run("Views Are Copies", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Define(domain.TaskDef{Name: "a", Prerequisites: []string{"b"}}))

		task, _ := r.Lookup("a")
		task.Prerequisites[0] = "mutated"

		again, _ := r.Lookup("a")
		assert.Equal(t, []string{"b"}, again.Prerequisites)
	})
}

func TestRegistry_Invoke(t *testing.T) {
	ctx := context.Background()

	t.Run("Prerequisites Run First Once", func(t *testing.T) {
		rec := &recorder{}
		r := NewRegistry()
		require.NoError(t, r.Define(
			domain.TaskDef{Name: "top", Prerequisites: []string{"left", "right"}, Action: rec.action("top", nil)},
			domain.TaskDef{Name: "left", Prerequisites: []string{"base"}, Action: rec.action("left", nil)},
			domain.TaskDef{Name: "right", Prerequisites: []string{"base"}, Action: rec.action("right", nil)},
			domain.TaskDef{Name: "base", Action: rec.action("base", nil)},
		))

		require.NoError(t, r.Invoke(ctx, "top"))
		assert.Equal(t, []string{"base", "left", "right", "top"}, rec.calls)
	})

	t.Run("Args Reach Every Action", func(t *testing.T) {
		rec := &recorder{}
		r := NewRegistry()
		require.NoError(t, r.Define(
			domain.TaskDef{Name: "alias", Prerequisites: []string{"real"}},
			domain.TaskDef{Name: "real", Action: rec.action("real", nil)},
		))

		require.NoError(t, r.Invoke(ctx, "alias", "--quiet", "-v"))
		assert.Equal(t, [][]string{{"--quiet", "-v"}}, rec.args)
	})

	t.Run("Each Invoke Is Independent", func(t *testing.T) {
		rec := &recorder{}
		r := NewRegistry()
		require.NoError(t, r.Define(domain.TaskDef{Name: "t", Action: rec.action("t", nil)}))

		require.NoError(t, r.Invoke(ctx, "t"))
		require.NoError(t, r.Invoke(ctx, "t"))
		assert.Equal(t, []string{"t", "t"}, rec.calls)
	})

	t.Run("First Error Stops And Is Unchanged", func(t *testing.T) {
		rec := &recorder{}
		halt := &domain.HaltError{Command: "tool", Subcommand: "check", Code: 3}
		r := NewRegistry()
		require.NoError(t, r.Define(
			domain.TaskDef{Name: "top", Prerequisites: []string{"fails", "never"}, Action: rec.action("top", nil)},
			domain.TaskDef{Name: "fails", Action: rec.action("fails", halt)},
			domain.TaskDef{Name: "never", Action: rec.action("never", nil)},
		))

		err := r.Invoke(ctx, "top")
		assert.Same(t, halt, err)
		assert.Equal(t, []string{"fails"}, rec.calls)
	})

	t.Run("Unknown Task", func(t *testing.T) {
		err := NewRegistry().Invoke(ctx, "missing")

		var taskErr *TaskError
		require.ErrorAs(t, err, &taskErr)
		assert.ErrorIs(t, err, ErrTaskNotFound)
		assert.Equal(t, `task not found: "missing"`, err.Error())
	})

	t.Run("Unknown Prerequisite", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Define(domain.TaskDef{Name: "alias", Prerequisites: []string{"gone"}}))

		err := r.Invoke(ctx, "alias")
		assert.ErrorIs(t, err, ErrTaskNotFound)
		assert.Equal(t, `task not found: "gone" (required by "alias")`, err.Error())
	})

	t.Run("Cycle", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Define(
			domain.TaskDef{Name: "a", Prerequisites: []string{"b"}},
			domain.TaskDef{Name: "b", Prerequisites: []string{"a"}},
		))

		err := r.Invoke(ctx, "a")
		assert.ErrorIs(t, err, ErrCycle)
		assert.Equal(t, "circular dependency detected: a => b => a", err.Error())
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		rec := &recorder{}
		r := NewRegistry()
		require.NoError(t, r.Define(domain.TaskDef{Name: "t", Action: rec.action("t", nil)}))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := r.Invoke(cancelled, "t")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, rec.calls)
	})

	t.Run("Hooks", func(t *testing.T) {
		var started, finished []string
		var lastErr error
		boom := errors.New("boom")
		r := NewRegistry(WithLifecycleHooks(domain.LifecycleHooks{
			OnTaskStart: func(_ context.Context, e *domain.TaskEvent) {
				started = append(started, e.Task)
			},
			OnTaskFinish: func(_ context.Context, e *domain.TaskEvent) {
				finished = append(finished, e.Task)
				lastErr = e.Err
			},
		}))
		require.NoError(t, r.Define(
			domain.TaskDef{Name: "alias", Prerequisites: []string{"real"}},
			domain.TaskDef{Name: "real", Action: func(context.Context, []string) error { return boom }},
		))

		assert.ErrorIs(t, r.Invoke(ctx, "alias"), boom)
		assert.Equal(t, []string{"real"}, started, "aliases have no action to observe")
		assert.Equal(t, []string{"real"}, finished)
		assert.Same(t, boom, lastErr)
	})
}
