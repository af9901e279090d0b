package store

import (
	"sort"
	"sync"

	"github.com/taskdeck/taskdeck/models"
)

// MemoryTaskStore is the in-memory TaskStore implementation. Tasks live in
// a map keyed by ID alongside a single counter tracking the next ID to
// issue. All data is lost on process exit.
//
// The map and the counter are the only mutable state; an RWMutex keeps
// every operation atomic against both.
type MemoryTaskStore struct {
	mu     sync.RWMutex
	tasks  map[int]*models.Task
	nextID int
}

// NewMemoryTaskStore creates an empty store with the ID counter at 1.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{
		tasks:  make(map[int]*models.Task),
		nextID: 1,
	}
}

// Add inserts the task under its ID, advancing the counter past the ID if
// needed so pre-built entities cannot cause a future collision.
func (s *MemoryTaskStore) Add(task *models.Task) *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[task.ID] = task
	if task.ID+1 > s.nextID {
		s.nextID = task.ID + 1
	}
	return task
}

// Get retrieves a task by ID.
func (s *MemoryTaskStore) Get(id int) (*models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	return task, ok
}

// List returns all tasks sorted ascending by ID.
func (s *MemoryTaskStore) List() []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID < tasks[j].ID
	})
	return tasks
}

// Remove deletes the task with the given ID, reporting whether it existed.
// Deletion never gives the ID back; gaps are permanent.
func (s *MemoryTaskStore) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// Exists reports whether a task with the given ID is stored.
func (s *MemoryTaskStore) Exists(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tasks[id]
	return ok
}

// NextID returns the counter value without reserving it.
func (s *MemoryTaskStore) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nextID
}

// ReserveNextID returns the counter value and increments the counter.
func (s *MemoryTaskStore) ReserveNextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	return id
}

// Clear empties the store and resets the counter to 1.
func (s *MemoryTaskStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make(map[int]*models.Task)
	s.nextID = 1
}
