package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastgentlman/ordersync/internal/client/storage"
	"github.com/lastgentlman/ordersync/internal/models"
)

// createTestQueueStorage создает временное хранилище для тестов
func createTestQueueStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		if store.db != nil {
			err := store.Close()
			require.NoError(t, err)
		}
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Errorf("failed to remove tmpDir: %v", err)
		}
	}

	return store, cleanup
}

// createTestItem создает тестовый элемент очереди
func createTestItem(entityID string, queuedAt time.Time) *models.PendingSyncItem {
	return &models.PendingSyncItem{
		EntityID:   entityID,
		EntityType: "order",
		Action:     models.SyncActionCreate,
		QueuedAt:   queuedAt,
		Order: &models.Order{
			ClientGeneratedID: entityID,
			ClientName:        "Client " + entityID,
			Status:            models.OrderStatusPending,
			LastModifiedAt:    queuedAt,
		},
	}
}

func TestStorage_EnqueueAndGet(t *testing.T) {
	store, cleanup := createTestQueueStorage(t)
	defer cleanup()

	ctx := context.Background()
	item := createTestItem("order-1", time.Now().UTC().Truncate(time.Millisecond))

	require.NoError(t, store.Enqueue(ctx, item))

	got, err := store.Get(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, item.EntityID, got.EntityID)
	assert.Equal(t, models.SyncActionCreate, got.Action)
	require.NotNil(t, got.Order)
	assert.Equal(t, "Client order-1", got.Order.ClientName)
	assert.True(t, item.QueuedAt.Equal(got.QueuedAt))
}

func TestStorage_Get_NotFound(t *testing.T) {
	store, cleanup := createTestQueueStorage(t)
	defer cleanup()

	item, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrItemNotFound)
	assert.Nil(t, item)
}

func TestStorage_Enqueue_ReplacesExisting(t *testing.T) {
	store, cleanup := createTestQueueStorage(t)
	defer cleanup()

	ctx := context.Background()
	item := createTestItem("order-1", time.Now())
	require.NoError(t, store.Enqueue(ctx, item))

	// Повторная постановка того же entity перезаписывает запись
	item.Order.Status = models.OrderStatusDelivered
	require.NoError(t, store.Enqueue(ctx, item))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := store.Get(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got.Order.Status)
}

func TestStorage_List_OrderedByQueuedAt(t *testing.T) {
	store, cleanup := createTestQueueStorage(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now().UTC()

	// Ключи не в хронологическом порядке
	require.NoError(t, store.Enqueue(ctx, createTestItem("b-order", base.Add(2*time.Second))))
	require.NoError(t, store.Enqueue(ctx, createTestItem("a-order", base.Add(3*time.Second))))
	require.NoError(t, store.Enqueue(ctx, createTestItem("c-order", base.Add(1*time.Second))))

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "c-order", items[0].EntityID)
	assert.Equal(t, "b-order", items[1].EntityID)
	assert.Equal(t, "a-order", items[2].EntityID)
}

func TestStorage_List_Empty(t *testing.T) {
	store, cleanup := createTestQueueStorage(t)
	defer cleanup()

	items, err := store.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorage_Remove(t *testing.T) {
	store, cleanup := createTestQueueStorage(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Enqueue(ctx, createTestItem("order-1", time.Now())))

	require.NoError(t, store.Remove(ctx, "order-1"))

	_, err := store.Get(ctx, "order-1")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStorage_Remove_NotFound(t *testing.T) {
	store, cleanup := createTestQueueStorage(t)
	defer cleanup()

	err := store.Remove(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestStorage_MarkFailed(t *testing.T) {
	store, cleanup := createTestQueueStorage(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Enqueue(ctx, createTestItem("order-1", time.Now())))

	require.NoError(t, store.MarkFailed(ctx, "order-1", "server unavailable"))
	require.NoError(t, store.MarkFailed(ctx, "order-1", "timeout"))

	got, err := store.Get(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.RetryCount)
	assert.Equal(t, "timeout", got.LastError)
}

func TestStorage_MarkFailed_NotFound(t *testing.T) {
	store, cleanup := createTestQueueStorage(t)
	defer cleanup()

	err := store.MarkFailed(context.Background(), "missing", "err")

	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestStorage_ClosedStorage(t *testing.T) {
	store, cleanup := createTestQueueStorage(t)
	cleanup()
	store.db = nil

	ctx := context.Background()

	assert.ErrorIs(t, store.Enqueue(ctx, createTestItem("x", time.Now())), storage.ErrStorageClosed)

	_, err := store.Get(ctx, "x")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.List(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	_, err = store.Count(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
