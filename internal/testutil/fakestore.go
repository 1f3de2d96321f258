// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"daylist/internal/service"
)

// ErrNotFound is returned when a task does not exist.
var ErrNotFound = errors.New("not found")

// FakeStore is an in-memory implementation of service.Store for testing.
// Tasks are kept in insertion (createdAt) order. Watch subscribers get a
// full snapshot on subscription and after every mutation.
type FakeStore struct {
	mu    sync.RWMutex
	tasks []service.Task
	subs  []chan []service.Task

	// Error injection for testing. The per-id maps let bulk-operation
	// tests fail some writes and not others.
	ListErr   error
	WatchErr  error
	CreateErr error
	UpdateErr map[string]error // task id -> error
	DeleteErr map[string]error // task id -> error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		UpdateErr: make(map[string]error),
		DeleteErr: make(map[string]error),
	}
}

// AddTask seeds a task. A zero id gets a generated one; a zero
// CreatedAt gets a timestamp after every existing task, preserving
// insertion order.
func (f *FakeStore) AddTask(t service.Task) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = service.PriorityMedium
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().Add(time.Duration(len(f.tasks)) * time.Millisecond)
	}
	f.tasks = append(f.tasks, t)
	f.notifyLocked()
	return t
}

// Tasks returns a copy of the current collection.
func (f *FakeStore) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// ListTasks implements service.Store.
func (f *FakeStore) ListTasks(ctx context.Context, ownerID string) ([]service.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []service.Task
	for _, t := range f.tasks {
		if t.OwnerID == ownerID || t.OwnerID == "" {
			out = append(out, t)
		}
	}
	return out, nil
}

// Watch implements service.Store.
func (f *FakeStore) Watch(ctx context.Context, ownerID string) (<-chan []service.Task, error) {
	if f.WatchErr != nil {
		return nil, f.WatchErr
	}
	f.mu.Lock()
	ch := make(chan []service.Task, 16)
	f.subs = append(f.subs, ch)
	snapshot := make([]service.Task, len(f.tasks))
	copy(snapshot, f.tasks)
	ch <- snapshot
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		for i, sub := range f.subs {
			if sub == ch {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				close(ch)
				break
			}
		}
		f.mu.Unlock()
	}()

	return ch, nil
}

// CreateTask implements service.Store.
func (f *FakeStore) CreateTask(ctx context.Context, ownerID string, fields service.TaskFields) (string, error) {
	if f.CreateErr != nil {
		return "", f.CreateErr
	}

	priority := fields.Priority
	if priority == "" {
		priority = service.PriorityMedium
	}
	t := f.AddTask(service.Task{
		Text:      fields.Text,
		OwnerID:   ownerID,
		DueDate:   fields.DueDate,
		Priority:  priority,
		Notes:     fields.Notes,
		CreatedAt: time.Now(),
	})
	return t.ID, nil
}

// UpdateTask implements service.Store.
func (f *FakeStore) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) error {
	if err := f.UpdateErr[id]; err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		t := &f.tasks[i]
		if patch.Text != nil {
			t.Text = *patch.Text
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		if patch.ClearDue {
			t.DueDate = nil
		} else if patch.DueDate != nil {
			due := *patch.DueDate
			t.DueDate = &due
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.Notes != nil {
			t.Notes = *patch.Notes
		}
		f.notifyLocked()
		return nil
	}
	return ErrNotFound
}

// DeleteTask implements service.Store.
func (f *FakeStore) DeleteTask(ctx context.Context, id string) error {
	if err := f.DeleteErr[id]; err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			f.notifyLocked()
			return nil
		}
	}
	return ErrNotFound
}

// notifyLocked pushes a full replacement snapshot to every subscriber.
// Callers must hold f.mu.
func (f *FakeStore) notifyLocked() {
	for _, sub := range f.subs {
		snapshot := make([]service.Task, len(f.tasks))
		copy(snapshot, f.tasks)
		select {
		case sub <- snapshot:
		default:
			// Slow subscriber; it will catch up on the next snapshot.
		}
	}
}
