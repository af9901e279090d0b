package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/taskdeck/taskdeck/internal/task"
	"github.com/taskdeck/taskdeck/internal/ui"
	"github.com/taskdeck/taskdeck/models"
	"github.com/taskdeck/taskdeck/store"
)

// MenuItem represents one entry of the main menu.
type MenuItem struct {
	Label       string
	Description string
	Action      func(svc *task.Service) error
	Exit        bool
}

// runMenuLoop drives the interactive session. The store and service are
// constructed here, once per process: the task list exists only for the
// lifetime of this loop.
func runMenuLoop() {
	svc := task.NewService(store.NewMemoryTaskStore())

	fmt.Println(ui.StyleHeader.Render("TASKDECK"))
	fmt.Println(ui.StyleSubtle.Render("Welcome to your todo list. Tasks are kept in memory for this session only."))
	fmt.Println()

	for {
		item, err := selectMenuItem(svc)
		if err != nil {
			// Ctrl+C on the menu means leave.
			fmt.Println("\nGoodbye!")
			return
		}
		if item.Exit {
			fmt.Println("\nGoodbye!")
			return
		}

		if err := item.Action(svc); err != nil {
			switch err {
			case promptui.ErrInterrupt, promptui.ErrAbort:
				fmt.Println("Cancelled.")
			case ErrNoTasksFound:
				fmt.Println(ui.StyleSubtle.Render("No tasks available yet. Add one first."))
			default:
				// Validation and not-found errors are recoverable: show
				// them and return to the menu. So is anything unexpected.
				fmt.Println(ui.Error(userFacingMessage(err)))
			}
		}
		fmt.Println()
	}
}

// selectMenuItem shows the main menu and returns the chosen entry.
func selectMenuItem(svc *task.Service) (MenuItem, error) {
	stats := svc.Statistics()

	items := []MenuItem{
		{
			Label:       "Add Task",
			Description: "Create a new task",
			Action:      handleAddTask,
		},
		{
			Label:       fmt.Sprintf("View Tasks (%d total)", stats.Total),
			Description: "Show all tasks with their status",
			Action:      handleViewTasks,
		},
		{
			Label:       "Update Task",
			Description: "Change a task's title or description",
			Action:      handleUpdateTask,
		},
		{
			Label:       "Delete Task",
			Description: "Remove a task permanently",
			Action:      handleDeleteTask,
		},
		{
			Label:       "Mark Complete/Incomplete",
			Description: "Toggle a task's completion status",
			Action:      handleToggleStatus,
		},
		{
			Label:       "Exit",
			Description: "Quit taskdeck",
			Exit:        true,
		},
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | faint }}",
		Details:  "  {{ .Description | faint }}",
	}

	prompt := promptui.Select{
		Label:     "What would you like to do?",
		Items:     items,
		Templates: templates,
		Size:      len(items),
		HideHelp:  true,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return MenuItem{}, err
	}
	return items[i], nil
}

// selectTask presents a searchable list of tasks matching the filter. The
// service owns all rules; this helper only picks an ID.
func selectTask(svc *task.Service, filterFn func(*models.Task) bool, label string) (*models.Task, error) {
	var tasks []*models.Task
	for _, t := range svc.GetAllTasks() {
		if filterFn == nil || filterFn(t) {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasksFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Title | cyan }} (ID: {{ .ID }}, {{ .Status }})",
		Inactive: "  {{ .Title | faint }} (ID: {{ .ID }}, {{ .Status }})",
		Selected: `{{ "✔" | green }} {{ .Title | faint }} (ID: {{ .ID }})`,
	}

	searcher := func(input string, index int) bool {
		t := tasks[index]
		return strings.Contains(strings.ToLower(t.Title), strings.ToLower(input)) ||
			strings.Contains(fmt.Sprint(t.ID), input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     tasks,
		Templates: templates,
		Searcher:  searcher,
		HideHelp:  true,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return nil, err // includes promptui.ErrInterrupt
	}
	return tasks[i], nil
}

// handleAddTask collects a title and optional description and creates the
// task. Raw input goes to the service unmodified; trimming and length
// rules live there.
func handleAddTask(svc *task.Service) error {
	titlePrompt := promptui.Prompt{
		Label: "Task title",
		Validate: func(input string) error {
			_, err := svc.ValidateTitle(input)
			return err
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return err
	}

	descPrompt := promptui.Prompt{
		Label: "Description (press Enter to skip)",
	}
	description, err := descPrompt.Run()
	if err != nil {
		return err
	}

	created, err := svc.AddTask(title, description)
	if err != nil {
		return err
	}

	fmt.Println(ui.Success(fmt.Sprintf("Task created with ID: %d", created.ID)))
	fmt.Printf("Task: %q [%s]\n", created.Title, created.Status)
	return nil
}

// handleViewTasks renders the full task table and the statistics line.
func handleViewTasks(svc *task.Service) error {
	fmt.Println(ui.StyleTitle.Render("--- Your Tasks ---"))

	table := &ui.TaskTable{Tasks: svc.GetAllTasks()}
	fmt.Print(table.Render())

	stats := svc.Statistics()
	if stats.Total > 0 {
		fmt.Println(ui.StatsLine(stats.Total, stats.Completed, stats.Remaining))
	}
	return nil
}

// handleUpdateTask lets the user pick a task and supply a new title and/or
// description. Pressing Enter keeps the current value; only supplied fields
// reach the service, as the tri-state update contract requires.
func handleUpdateTask(svc *task.Service) error {
	selected, err := selectTask(svc, nil, "Select task to update")
	if err != nil {
		return err
	}

	fmt.Printf("Current task: %q %s\n", selected.Title, describeDescription(selected))

	titlePrompt := promptui.Prompt{Label: "New title (press Enter to keep current)"}
	newTitle, err := titlePrompt.Run()
	if err != nil {
		return err
	}

	descPrompt := promptui.Prompt{Label: "New description (press Enter to keep current)"}
	newDescription, err := descPrompt.Run()
	if err != nil {
		return err
	}

	var titleArg, descArg *string
	if newTitle != "" {
		titleArg = &newTitle
	}
	if newDescription != "" {
		descArg = &newDescription
	}

	updated, changed, err := svc.UpdateTask(selected.ID, titleArg, descArg)
	if err != nil {
		return err
	}

	if !changed {
		fmt.Println("No changes made. Task remains unchanged.")
		return nil
	}

	fmt.Println(ui.Success(fmt.Sprintf("Task %d updated successfully", updated.ID)))
	fmt.Printf("Updated task: %q %s\n", updated.Title, describeDescription(updated))
	return nil
}

// handleDeleteTask picks a task, confirms, and removes it permanently.
func handleDeleteTask(svc *task.Service) error {
	selected, err := selectTask(svc, nil, "Select task to delete")
	if err != nil {
		return err
	}

	confirm := promptui.Prompt{
		Label:     fmt.Sprintf("Delete task %q (ID: %d)", selected.Title, selected.ID),
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		if err == promptui.ErrAbort {
			fmt.Println("Deletion cancelled. Task remains.")
			return nil
		}
		return err
	}

	deleted, err := svc.DeleteTask(selected.ID)
	if err != nil {
		return err
	}

	fmt.Println(ui.Success(fmt.Sprintf("Task %d deleted successfully", deleted.ID)))
	return nil
}

// handleToggleStatus picks a task and marks it complete or incomplete. The
// service rejects self-transitions, so marking a complete task complete
// again surfaces as feedback instead of silently succeeding.
func handleToggleStatus(svc *task.Service) error {
	selected, err := selectTask(svc, nil, "Select task to toggle")
	if err != nil {
		return err
	}

	fmt.Printf("Current status: %s %s\n", selected.StatusSymbol(), selected.Status)

	prompt := promptui.Select{
		Label:    "Choose",
		Items:    []string{"Mark Complete", "Mark Incomplete"},
		HideHelp: true,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return err
	}

	var updated *models.Task
	if i == 0 {
		updated, err = svc.MarkComplete(selected.ID)
	} else {
		updated, err = svc.MarkIncomplete(selected.ID)
	}
	if err != nil {
		return err
	}

	fmt.Println(ui.Success(fmt.Sprintf("Task %d marked as %s", updated.ID, updated.Status)))
	return nil
}

func describeDescription(t *models.Task) string {
	if t.Description == "" {
		return "(no description)"
	}
	return fmt.Sprintf("(%s)", t.Description)
}
