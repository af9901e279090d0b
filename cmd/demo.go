package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/task"
	"github.com/taskdeck/taskdeck/internal/ui"
	"github.com/taskdeck/taskdeck/store"
)

// demoCmd walks through every feature without user interaction, including
// the failure cases. Useful as a smoke test and as a quick tour.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted, non-interactive feature walkthrough",
	Long: `Runs every taskdeck operation against a throwaway in-memory list:
adding, viewing, updating, completing and deleting tasks, plus the
validation and not-found failures a user could run into.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pause := time.Duration(GetConfig().Demo.PauseMs) * time.Millisecond
		runDemo(cmd.OutOrStdout(), pause)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(w io.Writer, pause time.Duration) {
	svc := task.NewService(store.NewMemoryTaskStore())

	section := func(title string) {
		time.Sleep(pause)
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.StyleHeader.Render(title))
	}

	section("1. Add and view tasks")
	t1, _ := svc.AddTask("Buy groceries", "Milk, eggs, bread")
	fmt.Fprintf(w, "created %v\n", t1)
	t2, _ := svc.AddTask("Call dentist", "")
	fmt.Fprintf(w, "created %v\n", t2)
	t3, _ := svc.AddTask("Finish project", "Due Friday")
	fmt.Fprintf(w, "created %v\n", t3)

	table := &ui.TaskTable{Tasks: svc.GetAllTasks()}
	fmt.Fprint(w, table.Render())
	stats := svc.Statistics()
	fmt.Fprintln(w, ui.StatsLine(stats.Total, stats.Completed, stats.Remaining))

	section("2. Update a task")
	newTitle := "Buy groceries and snacks"
	updated, changed, _ := svc.UpdateTask(t1.ID, &newTitle, nil)
	fmt.Fprintf(w, "updated task %d (changed=%v): %q\n", updated.ID, changed, updated.Title)

	sameTitle := newTitle
	_, changed, _ = svc.UpdateTask(t1.ID, &sameTitle, nil)
	fmt.Fprintf(w, "updating with the same title reports changed=%v\n", changed)

	section("3. Toggle completion")
	done, _ := svc.MarkComplete(t2.ID)
	fmt.Fprintf(w, "completed %v\n", done)
	if _, err := svc.MarkComplete(t2.ID); err != nil {
		fmt.Fprintf(w, "completing it again fails: %v\n", err)
	}
	reopened, _ := svc.MarkIncomplete(t2.ID)
	fmt.Fprintf(w, "reopened %v\n", reopened)

	section("4. Validation failures")
	if _, err := svc.AddTask("   ", ""); err != nil {
		fmt.Fprintf(w, "blank title rejected: %v\n", err)
	}
	if _, err := svc.AddTask(strings.Repeat("x", 201), ""); err != nil {
		fmt.Fprintf(w, "oversized title rejected: %v\n", err)
	}
	if _, err := svc.AddTask("T", strings.Repeat("x", 501)); err != nil {
		fmt.Fprintf(w, "oversized description rejected: %v\n", err)
	}

	section("5. Delete a task")
	deleted, _ := svc.DeleteTask(t3.ID)
	fmt.Fprintf(w, "deleted %v\n", deleted)
	if _, err := svc.GetTask(t3.ID); err != nil {
		fmt.Fprintf(w, "fetching it afterwards fails: %v\n", err)
	}
	next, _ := svc.AddTask("Plan weekend", "")
	fmt.Fprintf(w, "new task gets a fresh ID, never a recycled one: %v\n", next)

	stats = svc.Statistics()
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.StatsLine(stats.Total, stats.Completed, stats.Remaining))
	fmt.Fprintln(w, ui.Success("Demo finished"))
}
