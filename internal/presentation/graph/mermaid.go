package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/bundleaudit/pkg/registry"
)

// GenerateMermaid produces a Mermaid flowchart of the task table.
// It applies semantic styling:
// - Task with actions: [[Subroutine]]
// - Alias (prerequisites only): (Rounded)
// - Anything else: [Rectangle]
// Edges point from a task to the prerequisite it triggers; alias edges are dotted.
func GenerateMermaid(tasks []registry.Task) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, task := range tasks {
		safeID := sanitizeMermaidID(task.Name)

		opener, closer := "[", "]"
		switch {
		case task.Actions > 0:
			opener, closer = "[[", "]]"
		case task.IsAlias():
			opener, closer = "(", ")"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, task.Name, closer))

		arrow := "-->"
		if task.IsAlias() {
			arrow = "-.->"
		}
		for _, pre := range task.Prerequisites {
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, sanitizeMermaidID(pre)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(":", "_", ".", "_", "-", "_", "/", "_", "\\", "_").Replace(id)
}
