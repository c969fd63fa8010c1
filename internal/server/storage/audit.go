package storage

import (
	"context"

	"github.com/lastgentlman/ordersync/internal/models"
)

//go:generate moq -out audit_mock.go . AuditStorage

// AuditStorage defines interface for the append-only resolution log.
// Entries are immutable: they are never updated or deleted by the sync core.
type AuditStorage interface {
	// AppendResolution persists one resolution log entry.
	// Failures here are non-fatal to the caller by contract:
	// the orchestrator reports them to its operational log and moves on.
	AppendResolution(ctx context.Context, entry *models.ResolutionLogEntry) error

	// ListResolutions returns all log entries for an order,
	// newest first. Used for audit queries.
	ListResolutions(ctx context.Context, orderID string) ([]*models.ResolutionLogEntry, error)
}
