package ui

import (
	"strings"
	"testing"

	"github.com/taskdeck/taskdeck/models"
)

func TestTaskTable_Empty(t *testing.T) {
	table := &TaskTable{}
	out := table.Render()
	if !strings.Contains(out, "No tasks yet") {
		t.Errorf("empty table output %q missing placeholder", out)
	}
}

func TestTaskTable_Render(t *testing.T) {
	first := models.NewTask(1, "Buy groceries")
	first.Description = "Milk, eggs, bread"
	second := models.NewTask(2, "Call dentist")
	second.MarkComplete()

	table := &TaskTable{Tasks: []*models.Task{first, second}}
	out := table.Render()

	for _, want := range []string{"ID", "Status", "Title", "Description", "Buy groceries", "Milk, eggs, bread", "Call dentist", "✓", "○", "(no description)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTaskTable_TruncatesLongDescriptions(t *testing.T) {
	task := models.NewTask(1, "Task")
	task.Description = strings.Repeat("d", 40)

	table := &TaskTable{Tasks: []*models.Task{task}}
	out := table.Render()

	if strings.Contains(out, task.Description) {
		t.Error("long description rendered untruncated")
	}
	if !strings.Contains(out, strings.Repeat("d", 27)+"...") {
		t.Errorf("truncated description not found in output:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this is a longer string", 10, "this is..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestStatsLine(t *testing.T) {
	out := StatsLine(3, 1, 2)
	for _, want := range []string{"Total: 3", "Completed: 1", "Remaining: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats line %q missing %q", out, want)
		}
	}
}
