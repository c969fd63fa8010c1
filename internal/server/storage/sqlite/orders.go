package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lastgentlman/ordersync/internal/models"
	"github.com/lastgentlman/ordersync/internal/server/storage"
)

// FindByClientGeneratedID retrieves an order by its client-assigned correlation id
// Returns ErrOrderNotFound if no such order exists
func (s *Storage) FindByClientGeneratedID(ctx context.Context, clientGeneratedID string) (*models.Order, error) {
	query := `
		SELECT id, client_generated_id, client_name, client_phone, total,
		       delivery_date, delivery_time, status, notes, modified_by,
		       created_at, last_modified_at
		FROM orders
		WHERE client_generated_id = ?
	`

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, clientGeneratedID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order by client id: %w", err)
	}

	return order, nil
}

// Upsert creates or replaces an order in a single atomic statement.
// Уникальный индекс по client_generated_id гарантирует, что два
// конкурентных пакета не создадут дубликат одной логической записи.
func (s *Storage) Upsert(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (
			id, client_generated_id, client_name, client_phone, total,
			delivery_date, delivery_time, status, notes, modified_by,
			created_at, last_modified_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(client_generated_id) DO UPDATE SET
			client_name = excluded.client_name,
			client_phone = excluded.client_phone,
			total = excluded.total,
			delivery_date = excluded.delivery_date,
			delivery_time = excluded.delivery_time,
			status = excluded.status,
			notes = excluded.notes,
			modified_by = excluded.modified_by,
			last_modified_at = excluded.last_modified_at
	`

	_, err := s.db.ExecContext(ctx, query,
		order.ID,
		order.ClientGeneratedID,
		order.ClientName,
		order.ClientPhone,
		order.Total,
		order.DeliveryDate,
		order.DeliveryTime,
		order.Status,
		order.Notes,
		order.ModifiedBy,
		timeToNano(order.CreatedAt),
		timeToNano(order.LastModifiedAt),
	)

	if err != nil {
		return fmt.Errorf("failed to upsert order: %w", err)
	}

	return nil
}

// ListOrders returns all orders ordered by creation time (newest first)
func (s *Storage) ListOrders(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT id, client_generated_id, client_name, client_phone, total,
		       delivery_date, delivery_time, status, notes, modified_by,
		       created_at, last_modified_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orders, nil
}

// rowScanner объединяет *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrder читает одну строку таблицы orders
func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}
	var createdAt, lastModifiedAt int64

	err := row.Scan(
		&order.ID,
		&order.ClientGeneratedID,
		&order.ClientName,
		&order.ClientPhone,
		&order.Total,
		&order.DeliveryDate,
		&order.DeliveryTime,
		&order.Status,
		&order.Notes,
		&order.ModifiedBy,
		&createdAt,
		&lastModifiedAt,
	)
	if err != nil {
		return nil, err
	}

	order.CreatedAt = nanoToTime(createdAt)
	order.LastModifiedAt = nanoToTime(lastModifiedAt)

	return order, nil
}

// Метки времени хранятся в наносекундах Unix, чтобы порядок версий
// не терялся при суб-секундных изменениях. Нулевое время кодируется нулем.
func timeToNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func nanoToTime(nano int64) time.Time {
	if nano == 0 {
		return time.Time{}
	}
	return time.Unix(0, nano).UTC()
}
