// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasktrack/internal/task"
)

// FormatTask formats one line of a task view.
// Format: "{ID:>4}  [x] {TITLE}\n" with "[ ]" for open tasks.
func FormatTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", t.ID, Checkbox(t.Completed), normalizeTitle(t.Title))
}

// FormatTasks formats every task of a view.
func FormatTasks(w io.Writer, tasks []task.Task) {
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// FormatFilterBar prints the three selectors with the current one bracketed.
func FormatFilterBar(w io.Writer, current task.Filter) {
	parts := make([]string, len(task.Filters))
	for i, f := range task.Filters {
		if f == current {
			parts[i] = "[" + f.String() + "]"
		} else {
			parts[i] = f.String()
		}
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

// Checkbox renders a completion flag.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
