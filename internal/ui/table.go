package ui

import (
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/models"
)

const (
	// descDisplayWidth is the width descriptions are truncated to in the
	// task list view.
	descDisplayWidth = 30

	noDescription = "(no description)"
)

// TaskTable renders the task list view: a fixed-column table with one row
// per task, ID ascending.
type TaskTable struct {
	Tasks []*models.Task
}

// Render returns the formatted table, or a placeholder line when there are
// no tasks yet.
func (t *TaskTable) Render() string {
	if len(t.Tasks) == 0 {
		return StyleSubtle.Render("No tasks yet") + "\n"
	}

	var sb strings.Builder

	header := fmt.Sprintf("%-4s %-8s %-25s %-30s", "ID", "Status", "Title", "Description")
	sb.WriteString(StyleTitle.Render(header) + "\n")
	sb.WriteString(StyleSubtle.Render(strings.Repeat("─", 70)) + "\n")

	for _, task := range t.Tasks {
		desc := task.Description
		if desc == "" {
			desc = noDescription
		}
		sb.WriteString(fmt.Sprintf("%-4d %-8s %-25s %-30s\n",
			task.ID,
			task.StatusSymbol(),
			Truncate(task.Title, 25),
			Truncate(desc, descDisplayWidth),
		))
	}

	sb.WriteString(StyleSubtle.Render(strings.Repeat("─", 70)) + "\n")
	return sb.String()
}

// StatsLine formats the Total/Completed/Remaining summary shown under the
// task list.
func StatsLine(total, completed, remaining int) string {
	return StyleSubtle.Render(fmt.Sprintf("Total: %d tasks | Completed: %d | Remaining: %d", total, completed, remaining))
}

// Truncate shortens s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
