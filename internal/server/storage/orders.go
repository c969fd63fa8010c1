package storage

import (
	"context"

	"github.com/lastgentlman/ordersync/internal/models"
)

//go:generate moq -out orders_mock.go . OrderStorage

// OrderStorage defines interface for the server-of-record order store
type OrderStorage interface {
	// FindByClientGeneratedID retrieves an order by its client-assigned
	// correlation id. Lookup by correlation id is required because the
	// server identity may not exist yet on a purely local record.
	// Returns ErrOrderNotFound if no such order exists.
	FindByClientGeneratedID(ctx context.Context, clientGeneratedID string) (*models.Order, error)

	// Upsert creates or replaces an order. The write of a single order
	// is atomic; callers never hold it across multiple operations.
	Upsert(ctx context.Context, order *models.Order) error

	// ListOrders returns all orders ordered by creation time (newest first)
	ListOrders(ctx context.Context) ([]*models.Order, error)
}
