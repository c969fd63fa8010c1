package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lastgentlman/ordersync/internal/models"
)

// AppendResolution persists one resolution log entry.
// Таблица append-only: записи никогда не обновляются и не удаляются.
func (s *Storage) AppendResolution(ctx context.Context, entry *models.ResolutionLogEntry) error {
	fields, err := json.Marshal(entry.ConflictFields)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict fields: %w", err)
	}

	query := `
		INSERT INTO resolution_log (
			order_id, outcome, explanation, resolved_by,
			resolved_at, local_timestamp, server_timestamp, conflict_fields
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		entry.OrderID,
		entry.Outcome,
		entry.Explanation,
		entry.ResolvedBy,
		timeToNano(entry.ResolvedAt),
		timeToNano(entry.LocalTimestamp),
		timeToNano(entry.ServerTimestamp),
		string(fields),
	)

	if err != nil {
		return fmt.Errorf("failed to append resolution: %w", err)
	}

	return nil
}

// ListResolutions returns all log entries for an order, newest first
func (s *Storage) ListResolutions(ctx context.Context, orderID string) ([]*models.ResolutionLogEntry, error) {
	query := `
		SELECT order_id, outcome, explanation, resolved_by,
		       resolved_at, local_timestamp, server_timestamp, conflict_fields
		FROM resolution_log
		WHERE order_id = ?
		ORDER BY resolved_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resolutions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	var entries []*models.ResolutionLogEntry
	for rows.Next() {
		entry := &models.ResolutionLogEntry{}
		var resolvedAt, localTS, serverTS int64
		var fields string

		err := rows.Scan(
			&entry.OrderID,
			&entry.Outcome,
			&entry.Explanation,
			&entry.ResolvedBy,
			&resolvedAt,
			&localTS,
			&serverTS,
			&fields,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resolution: %w", err)
		}

		entry.ResolvedAt = nanoToTime(resolvedAt)
		entry.LocalTimestamp = nanoToTime(localTS)
		entry.ServerTimestamp = nanoToTime(serverTS)

		if err := json.Unmarshal([]byte(fields), &entry.ConflictFields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal conflict fields: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}
