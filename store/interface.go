package store

import "github.com/taskdeck/taskdeck/models"

// TaskStore defines the contract for task storage and sequential ID
// generation. It is pure storage: no validation or business rules live
// here, and absence of a task is reported through ordinary return values,
// never through errors.
type TaskStore interface {
	// Add inserts the given task under its ID. If the task carries an ID
	// at or beyond the current counter, the counter is advanced past it so
	// that subsequent ReserveNextID calls stay unique. The normal creation
	// path reserves an ID first; Add tolerates pre-built entities.
	// It returns the stored task.
	Add(task *models.Task) *models.Task

	// Get retrieves a task by its ID. The boolean reports whether the
	// task exists; a missing ID is a normal, expected outcome.
	Get(id int) (*models.Task, bool)

	// List returns all stored tasks sorted ascending by ID. An empty
	// store yields an empty slice.
	List() []*models.Task

	// Remove deletes the task with the given ID if present and reports
	// whether a deletion actually occurred, so callers can distinguish a
	// no-op from a real removal. The ID counter is never decremented.
	Remove(id int) bool

	// Exists reports whether a task with the given ID is stored.
	Exists(id int) bool

	// NextID returns the ID that would be issued next, without
	// reserving it.
	NextID() int

	// ReserveNextID returns the current counter value and increments the
	// counter. This is the call used when actually creating a task.
	// Issued IDs are strictly increasing and never reused, even after
	// deletions.
	ReserveNextID() int

	// Clear empties the store and resets the ID counter to 1. Intended
	// for test isolation.
	Clear()
}
