package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/bundleaudit/pkg/registry"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TaskTable renders the task table as a markdown document.
func TaskTable(tasks []registry.Task) string {
	var sb strings.Builder
	sb.WriteString("# Tasks\n\n")
	sb.WriteString("| Task | Runs | Description |\n")
	sb.WriteString("|------|------|-------------|\n")
	for _, task := range tasks {
		runs := "-"
		if len(task.Prerequisites) > 0 {
			runs = "`" + strings.Join(task.Prerequisites, "`, `") + "`"
		}
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %s |\n", task.Name, runs, task.Description))
	}
	return sb.String()
}
