package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/bundleaudit/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bundle_audit"

// Metrics holds the Prometheus collectors for task and process events.
type Metrics struct {
	taskRuns     *prometheus.CounterVec
	taskDuration *prometheus.HistogramVec
	processExits *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		taskRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "task_runs_total",
				Help:      "Total number of task actions run, by result",
			},
			[]string{"task", "result"},
		),
		taskDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "task_duration_seconds",
				Help:      "Duration of task actions",
				Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
			},
			[]string{"task"},
		),
		processExits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "process_exits_total",
				Help:      "Total number of audit tool runs, by outcome",
			},
			[]string{"subcommand", "outcome", "code"},
		),
	}

	for _, c := range []prometheus.Collector{m.taskRuns, m.taskDuration, m.processExits} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTaskFinish: func(_ context.Context, e *domain.TaskEvent) {
			m.taskRuns.WithLabelValues(e.Task, taskResult(e.Err)).Inc()
			m.taskDuration.WithLabelValues(e.Task).Observe(e.Duration.Seconds())
		},
		OnProcessExit: func(_ context.Context, e *domain.ProcessEvent) {
			code := ""
			if e.Outcome.Kind == domain.OutcomeExit {
				code = fmt.Sprint(e.Outcome.Code)
			}
			m.processExits.WithLabelValues(e.Subcommand, e.Outcome.Kind.String(), code).Inc()
		},
	}
}

func taskResult(err error) string {
	switch {
	case err == nil:
		return "success"
	default:
		if _, ok := domain.HaltCode(err); ok {
			return "halted"
		}
		return "error"
	}
}

// WriteTextfile writes everything gathered by g to path in the Prometheus text format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
