// Package task implements the business logic layer of taskdeck: input
// validation, status-transition rules and orchestration of the task store.
// It is the sole entry point the CLI layer calls, and the sole origin of
// the typed errors the CLI layer displays.
package task

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taskdeck/taskdeck/models"
	"github.com/taskdeck/taskdeck/store"
	"github.com/taskdeck/taskdeck/types"
)

const (
	// TitleMaxLen is the maximum title length in characters, after trimming.
	TitleMaxLen = 200
	// DescriptionMaxLen is the maximum description length in characters,
	// after trimming.
	DescriptionMaxLen = 500
)

// validate is a single validator instance; it caches rule info.
var validate = validator.New()

// Statistics summarizes the current task list.
type Statistics struct {
	Total     int
	Completed int
	Remaining int
}

// Service coordinates task operations between the store and the CLI layer.
// All validation happens here; the entity and the store trust their inputs.
type Service struct {
	store store.TaskStore
}

// NewService creates a Service backed by the given store.
func NewService(s store.TaskStore) *Service {
	return &Service{store: s}
}

// ValidateTitle trims the raw title and checks it against the title rules.
// It returns the canonical (trimmed) form on success.
func (s *Service) ValidateTitle(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if err := validate.Var(trimmed, "required"); err != nil {
		return "", types.NewValidationError("Task title cannot be empty")
	}
	if err := validate.Var(trimmed, "max=200"); err != nil {
		return "", types.NewValidationError("Task title exceeds %d characters", TitleMaxLen)
	}
	return trimmed, nil
}

// ValidateDescription trims the raw description and checks the length rule.
// An empty or absent description is valid and normalizes to "".
func (s *Service) ValidateDescription(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	trimmed := strings.TrimSpace(raw)
	if err := validate.Var(trimmed, "max=500"); err != nil {
		return "", types.NewValidationError("Description exceeds %d characters", DescriptionMaxLen)
	}
	return trimmed, nil
}

// ValidateTaskID asserts that a task with the given ID exists.
func (s *Service) ValidateTaskID(id int) error {
	if !s.store.Exists(id) {
		return types.NewTaskNotFoundError(id)
	}
	return nil
}

// AddTask validates both fields, reserves the next ID and stores a new
// incomplete task. The stored fields are the normalized (trimmed) forms.
func (s *Service) AddTask(title, description string) (*models.Task, error) {
	validTitle, err := s.ValidateTitle(title)
	if err != nil {
		return nil, err
	}
	validDescription, err := s.ValidateDescription(description)
	if err != nil {
		return nil, err
	}

	task := models.NewTask(s.store.ReserveNextID(), validTitle)
	task.Description = validDescription

	return s.store.Add(task), nil
}

// GetAllTasks returns all tasks sorted ascending by ID.
func (s *Service) GetAllTasks() []*models.Task {
	return s.store.List()
}

// GetTask returns the task with the given ID.
func (s *Service) GetTask(id int) (*models.Task, error) {
	if err := s.ValidateTaskID(id); err != nil {
		return nil, err
	}
	task, _ := s.store.Get(id)
	return task, nil
}

// UpdateTask updates a task's title and/or description. A nil pointer means
// "leave the field alone"; a pointer to a value (including the empty string
// for descriptions) means "set it". Each supplied field is validated,
// normalized and applied only when the normalized value actually differs.
// The boolean reports whether any field changed. ID and Status are never
// touched here.
func (s *Service) UpdateTask(id int, newTitle, newDescription *string) (*models.Task, bool, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, false, err
	}

	changed := false

	if newTitle != nil {
		validTitle, err := s.ValidateTitle(*newTitle)
		if err != nil {
			return nil, false, err
		}
		if validTitle != task.Title {
			task.UpdateTitle(validTitle)
			changed = true
		}
	}

	if newDescription != nil {
		validDescription, err := s.ValidateDescription(*newDescription)
		if err != nil {
			return nil, false, err
		}
		if validDescription != task.Description {
			task.UpdateDescription(validDescription)
			changed = true
		}
	}

	return task, changed, nil
}

// DeleteTask removes a task permanently and returns the removed task so the
// caller can display what was deleted. There is no undo.
func (s *Service) DeleteTask(id int) (*models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	s.store.Remove(id)
	return task, nil
}

// MarkComplete transitions a task to complete. Marking an already complete
// task is an error rather than a silent no-op, so the CLI can tell the user
// nothing was done.
func (s *Service) MarkComplete(id int) (*models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	if task.IsComplete() {
		return nil, types.NewValidationError("Task is already complete")
	}
	task.MarkComplete()
	return task, nil
}

// MarkIncomplete transitions a task back to incomplete, symmetric to
// MarkComplete.
func (s *Service) MarkIncomplete(id int) (*models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	if !task.IsComplete() {
		return nil, types.NewValidationError("Task is already incomplete")
	}
	task.MarkIncomplete()
	return task, nil
}

// Statistics computes totals from the current task list.
func (s *Service) Statistics() Statistics {
	tasks := s.GetAllTasks()

	stats := Statistics{Total: len(tasks)}
	for _, t := range tasks {
		if t.IsComplete() {
			stats.Completed++
		}
	}
	stats.Remaining = stats.Total - stats.Completed
	return stats
}
