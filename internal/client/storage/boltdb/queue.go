package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/lastgentlman/ordersync/internal/client/storage"
	"github.com/lastgentlman/ordersync/internal/models"
)

// Enqueue stores or updates a pending sync item keyed by entity ID
func (s *Storage) Enqueue(ctx context.Context, item *models.PendingSyncItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем item в JSON
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal pending item: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketPending)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		// Сохраняем по ключу EntityID
		if err := bucket.Put([]byte(item.EntityID), data); err != nil {
			return fmt.Errorf("failed to save pending item: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// Get retrieves a pending sync item by entity ID
func (s *Storage) Get(ctx context.Context, entityID string) (*models.PendingSyncItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var item *models.PendingSyncItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return storage.ErrItemNotFound
		}

		data := bucket.Get([]byte(entityID))
		if data == nil {
			return storage.ErrItemNotFound
		}

		// Десериализуем
		item = &models.PendingSyncItem{}
		if err := json.Unmarshal(data, item); err != nil {
			return fmt.Errorf("failed to unmarshal pending item: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}

// List returns all pending items ordered by QueuedAt (oldest first)
func (s *Storage) List(ctx context.Context) ([]*models.PendingSyncItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var items []*models.PendingSyncItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			// Нет bucket - возвращаем пустой массив
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var item models.PendingSyncItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal pending item: %w", err)
			}
			items = append(items, &item)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list pending items: %w", err)
	}

	// BoltDB итерирует по ключам, а не по времени постановки в очередь
	sort.Slice(items, func(i, j int) bool {
		return items[i].QueuedAt.Before(items[j].QueuedAt)
	})

	return items, nil
}

// Remove deletes a pending item after successful sync
func (s *Storage) Remove(ctx context.Context, entityID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return storage.ErrItemNotFound
		}

		if bucket.Get([]byte(entityID)) == nil {
			return storage.ErrItemNotFound
		}

		if err := bucket.Delete([]byte(entityID)); err != nil {
			return fmt.Errorf("failed to delete pending item: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// MarkFailed increments the retry counter and records the last sync error
func (s *Storage) MarkFailed(ctx context.Context, entityID string, syncErr string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return storage.ErrItemNotFound
		}

		// Получаем существующую запись
		data := bucket.Get([]byte(entityID))
		if data == nil {
			return storage.ErrItemNotFound
		}

		var item models.PendingSyncItem
		if err := json.Unmarshal(data, &item); err != nil {
			return fmt.Errorf("failed to unmarshal pending item: %w", err)
		}

		item.RetryCount++
		item.LastError = syncErr

		// Сохраняем обратно
		updatedData, err := json.Marshal(&item)
		if err != nil {
			return fmt.Errorf("failed to marshal updated item: %w", err)
		}

		if err := bucket.Put([]byte(entityID), updatedData); err != nil {
			return fmt.Errorf("failed to save failed item: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// Count returns the number of pending items
func (s *Storage) Count(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count pending items: %w", err)
	}

	return count, nil
}
