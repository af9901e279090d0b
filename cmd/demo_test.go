package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunDemo_CoversEveryOperation(t *testing.T) {
	var buf bytes.Buffer
	runDemo(&buf, 0)
	out := buf.String()

	wantLines := []string{
		"[1] ○ Buy groceries",
		"Buy groceries and snacks",
		"changed=false",
		"[2] ✓ Call dentist",
		"Task is already complete",
		"Task title cannot be empty",
		"Task title exceeds 200 characters",
		"Description exceeds 500 characters",
		"Task ID 3 not found",
		"[4] ○ Plan weekend",
		"Demo finished",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q\n---\n%s", want, out)
		}
	}
}
