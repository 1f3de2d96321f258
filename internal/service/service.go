package service

import "context"

// Store defines the interface for the remote task store.
// All Firestore calls go through this interface; commands never import
// the SDK directly.
type Store interface {
	// ListTasks returns the owner's tasks in createdAt order.
	ListTasks(ctx context.Context, ownerID string) ([]Task, error)

	// Watch subscribes to the owner's tasks. Every element on the
	// returned channel is a full replacement snapshot in createdAt
	// order, never an incremental patch. The channel is closed when
	// ctx is cancelled or the stream fails.
	Watch(ctx context.Context, ownerID string) (<-chan []Task, error)

	// CreateTask creates a task owned by ownerID and returns its id.
	// An empty priority defaults to medium.
	CreateTask(ctx context.Context, ownerID string, fields TaskFields) (string, error)

	// UpdateTask applies a partial update to a task.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) error

	// DeleteTask deletes a task. Immediate and terminal.
	DeleteTask(ctx context.Context, id string) error
}
