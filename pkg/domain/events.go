package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTaskStart   EventType = "task_start"
	EventTaskFinish  EventType = "task_finish"
	EventProcessExit EventType = "process_exit"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TaskEvent represents a task action starting or finishing.
type TaskEvent struct {
	EventBase
	Task     string        `json:"task"`
	Args     []string      `json:"args,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// ProcessEvent represents a completed run of the external tool.
type ProcessEvent struct {
	EventBase
	Command    string        `json:"command"`
	Subcommand string        `json:"subcommand"`
	Args       []string      `json:"args"`
	Outcome    Outcome       `json:"-"`
	Duration   time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnTaskStart   func(context.Context, *TaskEvent)
	OnTaskFinish  func(context.Context, *TaskEvent)
	OnProcessExit func(context.Context, *ProcessEvent)
}
