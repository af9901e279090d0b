package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the completion state of a task.
type TaskStatus string

const (
	StatusIncomplete TaskStatus = "incomplete"
	StatusComplete   TaskStatus = "complete"
)

// Statuses returns every valid task status.
func Statuses() []TaskStatus {
	return []TaskStatus{StatusIncomplete, StatusComplete}
}

// Task represents a single todo item.
//
// The ID is assigned by the store during creation and never changes
// afterwards. Title, Description and Status are mutable through the
// methods below. The entity performs no validation of its own; callers
// (the service layer) are expected to pass pre-validated values.
type Task struct {
	ID          int        `json:"id" validate:"required,gt=0"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description,omitempty" validate:"max=500"`
	Status      TaskStatus `json:"status" validate:"required,oneof=incomplete complete"`
	CreatedAt   time.Time  `json:"createdAt" validate:"required"`
}

// NewTask creates a task with defaults applied: empty description,
// incomplete status and CreatedAt set to the current time.
func NewTask(id int, title string) *Task {
	return &Task{
		ID:        id,
		Title:     title,
		Status:    StatusIncomplete,
		CreatedAt: time.Now(),
	}
}

// UpdateTitle replaces the title unconditionally.
func (t *Task) UpdateTitle(newTitle string) {
	t.Title = newTitle
}

// UpdateDescription replaces the description unconditionally.
func (t *Task) UpdateDescription(newDescription string) {
	t.Description = newDescription
}

// MarkComplete sets the status to complete.
func (t *Task) MarkComplete() {
	t.Status = StatusComplete
}

// MarkIncomplete sets the status to incomplete.
func (t *Task) MarkIncomplete() {
	t.Status = StatusIncomplete
}

// IsComplete reports whether the task has been completed.
func (t *Task) IsComplete() bool {
	return t.Status == StatusComplete
}

// StatusSymbol returns the glyph used when rendering the task's status.
func (t *Task) StatusSymbol() string {
	if t.IsComplete() {
		return "✓"
	}
	return "○"
}

func (t *Task) String() string {
	return fmt.Sprintf("[%d] %s %s", t.ID, t.StatusSymbol(), t.Title)
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}
