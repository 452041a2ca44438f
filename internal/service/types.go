// Package service owns the live task list and the operations that change it.
package service

import "errors"

// Task represents a single task item.
type Task struct {
	Title string
	Done  bool
}

var (
	// ErrEmptyTitle is returned when a title is blank after trimming.
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrInvalidSelection is returned when a task number is not an integer
	// or falls outside the current list.
	ErrInvalidSelection = errors.New("invalid task number")

	// ErrCorruptData is returned by a Store when the persisted document exists
	// but does not have the expected shape.
	ErrCorruptData = errors.New("corrupt task data")
)
