package storage

import (
	"context"

	"github.com/lastgentlman/ordersync/internal/models"
)

//go:generate moq -out queue_mock.go . PendingQueue

// PendingQueue defines the interface for the client-side offline queue.
// Items accumulate while the client is offline and are drained by the
// sync service in FIFO order of enqueueing.
type PendingQueue interface {
	// Enqueue adds an item to the pending queue keyed by its EntityID
	Enqueue(ctx context.Context, item *models.PendingSyncItem) error

	// Get retrieves a pending item by entity ID
	// Returns ErrItemNotFound if the item does not exist
	Get(ctx context.Context, entityID string) (*models.PendingSyncItem, error)

	// List returns all pending items ordered by QueuedAt (oldest first)
	List(ctx context.Context) ([]*models.PendingSyncItem, error)

	// Remove deletes a pending item after successful sync
	Remove(ctx context.Context, entityID string) error

	// MarkFailed increments the retry counter and records the last error
	MarkFailed(ctx context.Context, entityID string, syncErr string) error

	// Count returns the number of pending items
	Count(ctx context.Context) (int, error)
}
