package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"slices"
	"time"

	"github.com/aretw0/bundleaudit/internal/logging"
	"github.com/aretw0/bundleaudit/pkg/domain"
)

// Runner executes the external audit tool as a child process.
// The child inherits the caller's standard streams unless WithStdio says otherwise.
type Runner struct {
	command string
	baseDir string
	env     []string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithCommand overrides the executable name or path.
func WithCommand(command string) RunnerOption {
	return func(r *Runner) {
		if command != "" {
			r.command = command
		}
	}
}

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// WithEnv adds variables on top of the inherited environment.
func WithEnv(env map[string]string) RunnerOption {
	return func(r *Runner) {
		for _, k := range slices.Sorted(maps.Keys(env)) {
			r.env = append(r.env, k+"="+env[k])
		}
	}
}

// WithConfig applies a loaded Config.
func WithConfig(cfg Config) RunnerOption {
	return func(r *Runner) {
		WithCommand(cfg.Command)(r)
		WithBaseDir(cfg.Dir)(r)
		WithEnv(cfg.Env)(r)
	}
}

// WithStdio replaces the inherited standard streams.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger sets a structured logger for the runner.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) RunnerOption {
	return func(r *Runner) {
		r.hooks = hooks
	}
}

// NewRunner creates a Runner for domain.DefaultCommand.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		command: domain.DefaultCommand,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Command returns the executable the runner launches.
func (r *Runner) Command() string {
	return r.command
}

// Run launches the tool with [subcommand] ++ extra, waits for it and reports
// which of the three outcomes happened. It never exits the process.
func (r *Runner) Run(ctx context.Context, subcommand string, extra ...string) domain.Outcome {
	inv := domain.NewInvocation(r.command, subcommand, extra...)

	cmd := exec.CommandContext(ctx, inv.Command, inv.Args()...)
	cmd.Dir = r.baseDir
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.logger.Debug("Process Start", "cmd", inv.String(), "dir", r.baseDir)

	start := time.Now()
	outcome := classify(cmd.Run())
	elapsed := time.Since(start)

	r.logger.Debug("Process Exit", "cmd", inv.String(), "outcome", outcome.Kind.String(), "code", outcome.Code, "duration", elapsed)

	if r.hooks.OnProcessExit != nil {
		r.hooks.OnProcessExit(ctx, &domain.ProcessEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventProcessExit},
			Command:    inv.Command,
			Subcommand: inv.Subcommand(),
			Args:       inv.Args(),
			Outcome:    outcome,
			Duration:   elapsed,
		})
	}

	return outcome
}

// Invoke runs the tool and translates the outcome:
//   - exit status zero returns nil.
//   - a non-zero exit status returns *domain.HaltError carrying the same code.
//   - a tool that cannot be started returns *domain.CommandNotFoundError.
func (r *Runner) Invoke(ctx context.Context, subcommand string, extra ...string) error {
	outcome := r.Run(ctx, subcommand, extra...)

	switch outcome.Kind {
	case domain.OutcomeSuccess:
		return nil
	case domain.OutcomeExit:
		return &domain.HaltError{Command: r.command, Subcommand: subcommand, Code: outcome.Code}
	default:
		// A cancelled context stops the launch too; that is not a missing tool.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s interrupted: %w", r.command, subcommand, ctxErr)
		}
		r.logger.Error("Audit tool unavailable", "cmd", r.command, "err", outcome.Err)
		return &domain.CommandNotFoundError{Command: r.command, Err: outcome.Err}
	}
}

func classify(err error) domain.Outcome {
	if err == nil {
		return domain.Success()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return domain.Exited(exitStatus(exitErr))
	}
	return domain.LaunchFailed(err)
}

// exitStatus returns the child's exit code, or domain.FallbackExitCode when
// the platform does not report one (e.g. the child was killed by a signal).
func exitStatus(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code > 0 {
		return code
	}
	return domain.FallbackExitCode
}
