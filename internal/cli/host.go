package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/bundleaudit"
	"github.com/aretw0/bundleaudit/internal/logging"
	"github.com/aretw0/bundleaudit/pkg/adapters/process"
	"github.com/aretw0/bundleaudit/pkg/observability"
	"github.com/aretw0/bundleaudit/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// Options contains the global command line configuration.
type Options struct {
	ConfigPath  string
	Debug       bool
	MetricsFile string

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Host is the task table with the audit tasks defined into it.
type Host struct {
	Registry *registry.Registry

	metrics     *prometheus.Registry
	metricsFile string
	logger      *slog.Logger
}

// NewHost loads the config, builds the process runner and defines the audit tasks.
func NewHost(opts Options) (*Host, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.ForCLI(opts.Debug)
	}

	cfg, err := process.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Command != "" {
		logger.Debug("Config Loaded", "path", opts.ConfigPath, "command", cfg.Command)
	}

	promReg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(promReg)
	if err != nil {
		return nil, err
	}
	hooks := metrics.Hooks()

	runnerOpts := []process.RunnerOption{
		process.WithConfig(cfg),
		process.WithLogger(logger),
		process.WithLifecycleHooks(hooks),
	}
	if opts.Stdout != nil || opts.Stderr != nil {
		runnerOpts = append(runnerOpts, process.WithStdio(os.Stdin, writerOr(opts.Stdout, os.Stdout), writerOr(opts.Stderr, os.Stderr)))
	}

	reg := registry.NewRegistry(
		registry.WithLogger(logger),
		registry.WithLifecycleHooks(hooks),
	)
	if err := bundleaudit.NewTask(process.NewRunner(runnerOpts...)).Define(reg); err != nil {
		return nil, fmt.Errorf("failed to define audit tasks: %w", err)
	}

	return &Host{
		Registry:    reg,
		metrics:     promReg,
		metricsFile: opts.MetricsFile,
		logger:      logger,
	}, nil
}

// Run invokes the named task and then flushes metrics if a metrics file was requested.
// The task's error is returned unchanged.
func (h *Host) Run(ctx context.Context, task string, args []string) error {
	err := h.Registry.Invoke(ctx, task, args...)

	if h.metricsFile != "" {
		if mErr := observability.WriteTextfile(h.metricsFile, h.metrics); mErr != nil {
			h.logger.Warn("Metrics not written", "err", mErr)
		}
	}
	return err
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
