// Package service defines the backend-agnostic task store interface.
package service

import "time"

// Priority values stored on a task. Kept as plain strings so that a
// malformed value in an existing document passes through unchanged; the
// filter engine treats anything outside this set as "matches nothing".
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task represents a single todo item owned by one user.
// Firestore field names must round-trip exactly against documents written
// by other clients of the same collection.
type Task struct {
	// ID is the document id, assigned by the store on creation.
	ID string `firestore:"-"`

	Text      string     `firestore:"text"`
	Completed bool       `firestore:"completed"`
	OwnerID   string     `firestore:"ownerId"`
	CreatedAt time.Time  `firestore:"createdAt"`
	DueDate   *time.Time `firestore:"dueDate"`
	Priority  string     `firestore:"priority"`
	Notes     string     `firestore:"notes"`
}

// Status filter values.
type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusToday     Status = "today"
	StatusUpcoming  Status = "upcoming"
	StatusOverdue   Status = "overdue"
)

// PriorityAll is the priority filter value that matches every task.
const PriorityAll = "all"

// FilterState is the transient view state applied to a task collection.
// Built from command flags, never persisted.
type FilterState struct {
	Status   Status
	Priority string
	Search   string
}

// TaskFields holds the caller-supplied fields for task creation.
// Owner, completion state and creation time are set by the store.
type TaskFields struct {
	Text     string
	DueDate  *time.Time
	Priority string
	Notes    string
}

// TaskPatch is a partial update. Nil pointer fields are left untouched.
// ClearDue removes the due date and takes precedence over DueDate.
type TaskPatch struct {
	Text      *string
	Completed *bool
	DueDate   *time.Time
	ClearDue  bool
	Priority  *string
	Notes     *string
}

// IsZero reports whether the patch changes nothing.
func (p TaskPatch) IsZero() bool {
	return p.Text == nil && p.Completed == nil && p.DueDate == nil &&
		!p.ClearDue && p.Priority == nil && p.Notes == nil
}
