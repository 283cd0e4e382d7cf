package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/bundleaudit/pkg/registry"
	"github.com/stretchr/testify/assert"
)

var sampleTasks = []registry.Task{
	{Name: "bundle:audit", Prerequisites: []string{"bundle:audit:check"}},
	{Name: "bundle:audit:check", Description: "Checks the Gemfile.lock for insecure dependencies", Actions: 1},
	{Name: "bundle:audit:update", Description: "Updates the bundler-audit vulnerability database", Actions: 1},
}

func TestPrintTaskList(t *testing.T) {
	t.Run("Described Only", func(t *testing.T) {
		var buf bytes.Buffer
		PrintTaskList(&buf, "bat", sampleTasks, false)

		expected := "bat bundle:audit:check   # Checks the Gemfile.lock for insecure dependencies\n" +
			"bat bundle:audit:update  # Updates the bundler-audit vulnerability database\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("All", func(t *testing.T) {
		var buf bytes.Buffer
		PrintTaskList(&buf, "bat", sampleTasks, true)

		assert.Contains(t, buf.String(), "bat bundle:audit         # => bundle:audit:check\n")
	})
}

func TestTaskTable(t *testing.T) {
	md := TaskTable(sampleTasks)

	assert.Contains(t, md, "| `bundle:audit` | `bundle:audit:check` |  |")
	assert.Contains(t, md, "| `bundle:audit:update` | - | Updates the bundler-audit vulnerability database |")
}
