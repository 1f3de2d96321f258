package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across backends.
var (
	// ErrEmptyText rejects a create before it reaches the store.
	ErrEmptyText = errors.New("task text required")

	// ErrUnauthenticated means no owner identity is available.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrNotFound means the referenced task does not exist.
	ErrNotFound = errors.New("task not found")
)

// StoreError wraps a failed store operation with its context.
type StoreError struct {
	Op  string // "create", "update", "delete", "list", "watch"
	ID  string // task id, empty for collection-level operations
	Err error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// BulkFailure records one failed update within a bulk operation.
type BulkFailure struct {
	ID  string
	Err error
}

// BulkResult reports the outcome of a non-atomic bulk operation.
// Tasks in Done were written; tasks in Failed were not. There is no
// rollback of the writes that succeeded.
type BulkResult struct {
	Done   []string
	Failed []BulkFailure
}

// Partial reports whether some but not all writes failed.
func (r BulkResult) Partial() bool {
	return len(r.Failed) > 0 && len(r.Done) > 0
}
