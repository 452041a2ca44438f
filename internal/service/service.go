package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Store persists the full task list.
// Commands never touch a Store directly; every change goes through Service.
type Store interface {
	// Load returns the persisted tasks in order.
	// A missing document yields an empty list and no error.
	Load(ctx context.Context) ([]Task, error)

	// Save replaces the persisted document with tasks.
	Save(ctx context.Context, tasks []Task) error
}

// Service holds the live task list for the lifetime of the process.
// Every successful mutation is saved before the method returns.
type Service struct {
	store  Store
	tasks  []Task
	logger *zap.Logger
}

// New loads the task list from store.
func New(ctx context.Context, store Store, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tasks, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	logger.Debug("tasks loaded", zap.Int("count", len(tasks)))
	return &Service{
		store:  store,
		tasks:  tasks,
		logger: logger,
	}, nil
}

// Tasks returns a copy of the current list.
func (s *Service) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Service) Len() int {
	return len(s.tasks)
}

// Validate checks a 1-based position against the current list.
func (s *Service) Validate(pos int) error {
	_, err := s.index(pos)
	return err
}

func (s *Service) index(pos int) (int, error) {
	if pos < 1 || pos > len(s.tasks) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSelection, pos)
	}
	return pos - 1, nil
}

// Add appends a new, not-done task.
func (s *Service) Add(ctx context.Context, title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	task := Task{Title: title}
	next := append(s.Tasks(), task)
	if err := s.commit(ctx, next); err != nil {
		return Task{}, err
	}
	s.logger.Debug("task added", zap.Int("position", len(next)), zap.String("title", title))
	return task, nil
}

// MarkDone marks the task at pos as done.
func (s *Service) MarkDone(ctx context.Context, pos int) (Task, error) {
	return s.update(ctx, pos, func(t *Task) error {
		t.Done = true
		return nil
	})
}

// Toggle flips the done flag of the task at pos.
func (s *Service) Toggle(ctx context.Context, pos int) (Task, error) {
	return s.update(ctx, pos, func(t *Task) error {
		t.Done = !t.Done
		return nil
	})
}

// Edit replaces the title of the task at pos.
// The position is checked before the title.
func (s *Service) Edit(ctx context.Context, pos int, title string) (Task, error) {
	title = strings.TrimSpace(title)
	return s.update(ctx, pos, func(t *Task) error {
		if title == "" {
			return ErrEmptyTitle
		}
		t.Title = title
		return nil
	})
}

// Delete removes the task at pos and returns it.
// Later tasks move up one position.
func (s *Service) Delete(ctx context.Context, pos int) (Task, error) {
	i, err := s.index(pos)
	if err != nil {
		return Task{}, err
	}
	deleted := s.tasks[i]
	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return Task{}, err
	}
	s.logger.Debug("task deleted", zap.Int("position", pos), zap.String("title", deleted.Title))
	return deleted, nil
}

// ClearCompleted removes every done task and returns how many were removed.
// Nothing is saved when no task is done.
func (s *Service) ClearCompleted(ctx context.Context) (int, error) {
	next := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Done {
			next = append(next, t)
		}
	}
	removed := len(s.tasks) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	s.logger.Debug("completed tasks cleared", zap.Int("removed", removed))
	return removed, nil
}

func (s *Service) update(ctx context.Context, pos int, fn func(*Task) error) (Task, error) {
	i, err := s.index(pos)
	if err != nil {
		return Task{}, err
	}
	next := s.Tasks()
	if err := fn(&next[i]); err != nil {
		return Task{}, err
	}
	if err := s.commit(ctx, next); err != nil {
		return Task{}, err
	}
	s.logger.Debug("task updated", zap.Int("position", pos), zap.Bool("done", next[i].Done))
	return next[i], nil
}

// commit saves next and makes it the live list only if the save succeeds.
func (s *Service) commit(ctx context.Context, next []Task) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	s.tasks = next
	return nil
}
