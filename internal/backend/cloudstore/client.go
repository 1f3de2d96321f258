// Package cloudstore implements the service.Store interface on Cloud
// Firestore. Tasks live in one flat collection, one document per task,
// filtered by owner.
package cloudstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"daylist/internal/backend/googleauth"
	"daylist/internal/config"
	"daylist/internal/service"
)

const (
	// Collection holds one document per task. The field names inside
	// each document are fixed by service.Task's tags and shared with
	// the web client.
	Collection = "tasks"

	// APITimeout is the timeout for unary calls. Watch streams are
	// bounded by the caller's context instead.
	APITimeout = 5 * time.Second
)

// Client implements service.Store using Cloud Firestore.
type Client struct {
	fs *firestore.Client
}

// New creates a Firestore-backed store using the stored OAuth token.
// Requires oauth_client.json and token.json to exist and the project
// to be configured.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("project not configured (set %s)", config.ProjectEnv)
	}

	ts, err := googleauth.TokenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	fs, err := firestore.NewClient(ctx, cfg.ProjectID, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &Client{fs: fs}, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.fs.Close()
}

// query selects the owner's tasks in creation order.
func (c *Client) query(ownerID string) firestore.Query {
	return c.fs.Collection(Collection).
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Asc)
}

// ListTasks implements service.Store.
func (c *Client) ListTasks(ctx context.Context, ownerID string) ([]service.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	docs, err := c.query(ownerID).Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapError("list", "", err)
	}
	return decodeDocs(docs)
}

// Watch implements service.Store. Each element on the returned channel
// is a full replacement snapshot: readers see either the previous
// consistent snapshot or the next one, never a partial update.
func (c *Client) Watch(ctx context.Context, ownerID string) (<-chan []service.Task, error) {
	snaps := c.query(ownerID).Snapshots(ctx)

	ch := make(chan []service.Task, 1)
	go func() {
		defer close(ch)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					slog.Debug("watch stream ended", "owner", ownerID, "err", err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				slog.Debug("watch snapshot read failed", "owner", ownerID, "err", err)
				return
			}
			tasks, err := decodeDocs(docs)
			if err != nil {
				slog.Debug("watch snapshot decode failed", "owner", ownerID, "err", err)
				return
			}
			select {
			case ch <- tasks:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// CreateTask implements service.Store.
func (c *Client) CreateTask(ctx context.Context, ownerID string, fields service.TaskFields) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	priority := fields.Priority
	if priority == "" {
		priority = service.PriorityMedium
	}

	doc := c.fs.Collection(Collection).NewDoc()
	task := service.Task{
		Text:      fields.Text,
		Completed: false,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
		DueDate:   fields.DueDate,
		Priority:  priority,
		Notes:     fields.Notes,
	}
	if _, err := doc.Create(ctx, task); err != nil {
		return "", wrapError("create", "", err)
	}

	slog.Debug("task created", "id", doc.ID, "owner", ownerID)
	return doc.ID, nil
}

// UpdateTask implements service.Store. Only the fields named by the
// patch are written.
func (c *Client) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) error {
	if patch.IsZero() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.fs.Collection(Collection).Doc(id).Update(ctx, patchUpdates(patch))
	if err != nil {
		return wrapError("update", id, err)
	}
	slog.Debug("task updated", "id", id)
	return nil
}

// DeleteTask implements service.Store.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.fs.Collection(Collection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		return wrapError("delete", id, err)
	}
	slog.Debug("task deleted", "id", id)
	return nil
}

// patchUpdates translates a TaskPatch into field updates.
func patchUpdates(patch service.TaskPatch) []firestore.Update {
	var ups []firestore.Update
	if patch.Text != nil {
		ups = append(ups, firestore.Update{Path: "text", Value: *patch.Text})
	}
	if patch.Completed != nil {
		ups = append(ups, firestore.Update{Path: "completed", Value: *patch.Completed})
	}
	switch {
	case patch.ClearDue:
		ups = append(ups, firestore.Update{Path: "dueDate", Value: nil})
	case patch.DueDate != nil:
		ups = append(ups, firestore.Update{Path: "dueDate", Value: *patch.DueDate})
	}
	if patch.Priority != nil {
		ups = append(ups, firestore.Update{Path: "priority", Value: *patch.Priority})
	}
	if patch.Notes != nil {
		ups = append(ups, firestore.Update{Path: "notes", Value: *patch.Notes})
	}
	return ups
}

func decodeDocs(docs []*firestore.DocumentSnapshot) ([]service.Task, error) {
	var tasks []service.Task
	for _, doc := range docs {
		var t service.Task
		if err := doc.DataTo(&t); err != nil {
			return nil, wrapError("list", doc.Ref.ID, err)
		}
		t.ID = doc.Ref.ID
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// wrapError maps RPC failures onto the shared error taxonomy.
func wrapError(op, id string, err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.DeadlineExceeded:
		err = errors.New("request timed out")
	case codes.NotFound, codes.FailedPrecondition:
		err = service.ErrNotFound
	case codes.Unauthenticated, codes.PermissionDenied:
		err = errors.New("token expired or revoked (run: daylist login)")
	}
	return &service.StoreError{Op: op, ID: id, Err: err}
}
