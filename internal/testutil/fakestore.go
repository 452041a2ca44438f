// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todo/internal/service"
)

// FakeStore is an in-memory implementation of service.Store for testing.
type FakeStore struct {
	mu    sync.Mutex
	tasks []service.Task
	saves int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

// NewFakeStore creates a FakeStore holding tasks.
func NewFakeStore(tasks ...service.Task) *FakeStore {
	return &FakeStore{tasks: cloneTasks(tasks)}
}

// Load implements service.Store.
func (f *FakeStore) Load(ctx context.Context) ([]service.Task, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneTasks(f.tasks), nil
}

// Save implements service.Store.
func (f *FakeStore) Save(ctx context.Context, tasks []service.Task) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = cloneTasks(tasks)
	f.saves++
	return nil
}

// Saved returns the tasks from the most recent Save (or the initial tasks).
func (f *FakeStore) Saved() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneTasks(f.tasks)
}

// SaveCount returns the number of successful saves.
func (f *FakeStore) SaveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

func cloneTasks(tasks []service.Task) []service.Task {
	out := make([]service.Task, len(tasks))
	copy(out, tasks)
	return out
}
