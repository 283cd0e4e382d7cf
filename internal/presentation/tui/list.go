package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/bundleaudit/pkg/registry"
	"github.com/muesli/termenv"
)

// PrintTaskList writes the described tasks in the classic `-T` layout:
//
//	bundle-audit-tasks bundle:audit:check   # Checks the Gemfile.lock ...
//
// Names are coloured when w is a terminal. Tasks without a description are
// omitted unless all is set.
func PrintTaskList(w io.Writer, program string, tasks []registry.Task, all bool) {
	out := termenv.NewOutput(w)

	var shown []registry.Task
	width := 0
	for _, task := range tasks {
		if task.Description == "" && !all {
			continue
		}
		shown = append(shown, task)
		width = max(width, len(task.Name))
	}

	for _, task := range shown {
		name := out.String(task.Name).Foreground(out.Color("#818cf8"))
		pad := strings.Repeat(" ", width-len(task.Name))
		comment := task.Description
		if comment == "" && task.IsAlias() {
			comment = "=> " + strings.Join(task.Prerequisites, ", ")
		}
		fmt.Fprintf(w, "%s %s%s  # %s\n", program, name, pad, comment)
	}
}
