package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/lastgentlman/ordersync/internal/client/api"
	"github.com/lastgentlman/ordersync/internal/client/storage"
	"github.com/lastgentlman/ordersync/internal/models"
	"github.com/lastgentlman/ordersync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pendingItem(entityID string) *models.PendingSyncItem {
	return &models.PendingSyncItem{
		EntityID:   entityID,
		EntityType: "order",
		Action:     models.SyncActionUpdate,
		QueuedAt:   time.Now().UTC(),
		Order: &models.Order{
			ClientGeneratedID: entityID,
			ClientName:        "Client " + entityID,
			Status:            models.OrderStatusPending,
			LastModifiedAt:    time.Now().UTC(),
		},
	}
}

func TestSync_EmptyQueue(t *testing.T) {
	queue := &storage.PendingQueueMock{
		ListFunc: func(ctx context.Context) ([]*models.PendingSyncItem, error) {
			return nil, nil
		},
	}
	apiMock := &httpClient.ClientAPIMock{}

	svc := NewService(apiMock, queue, testLogger())

	result, err := svc.Sync(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, 0, result.PushedItems)
	// Пустая очередь - запрос к серверу не отправляется
	assert.Empty(t, apiMock.SyncCalls())
}

func TestSync_AllSynced(t *testing.T) {
	removed := make(map[string]bool)

	queue := &storage.PendingQueueMock{
		ListFunc: func(ctx context.Context) ([]*models.PendingSyncItem, error) {
			return []*models.PendingSyncItem{pendingItem("order-1"), pendingItem("order-2")}, nil
		},
		RemoveFunc: func(ctx context.Context, entityID string) error {
			removed[entityID] = true
			return nil
		},
	}

	apiMock := &httpClient.ClientAPIMock{
		SyncFunc: func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
			synced := make([]api.Order, 0, len(req.Orders))
			resolutions := make([]api.ResolutionEntry, 0, len(req.Orders))
			for _, o := range req.Orders {
				o.ID = "srv-" + o.ClientGeneratedID
				synced = append(synced, o)
				resolutions = append(resolutions, api.ResolutionEntry{
					OrderID: o.ID,
					Outcome: "local_wins",
				})
			}
			return &api.SyncResponse{Synced: synced, Resolutions: resolutions}, nil
		},
	}

	svc := NewService(apiMock, queue, testLogger())

	result, err := svc.Sync(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, 2, result.PushedItems)
	assert.Equal(t, 2, result.SyncedItems)
	assert.Equal(t, 0, result.FailedItems)
	assert.Equal(t, 2, result.Resolutions)

	assert.True(t, removed["order-1"])
	assert.True(t, removed["order-2"])

	require.Len(t, apiMock.SyncCalls(), 1)
	assert.Equal(t, "token", apiMock.SyncCalls()[0].AccessToken)
	assert.Len(t, apiMock.SyncCalls()[0].Req.Orders, 2)
}

func TestSync_PartialFailure(t *testing.T) {
	queue := &storage.PendingQueueMock{
		ListFunc: func(ctx context.Context) ([]*models.PendingSyncItem, error) {
			return []*models.PendingSyncItem{pendingItem("order-ok"), pendingItem("order-bad")}, nil
		},
		RemoveFunc: func(ctx context.Context, entityID string) error {
			return nil
		},
		MarkFailedFunc: func(ctx context.Context, entityID string, syncErr string) error {
			return nil
		},
	}

	apiMock := &httpClient.ClientAPIMock{
		SyncFunc: func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{
				Synced: []api.Order{{ClientGeneratedID: "order-ok"}},
				Errors: []api.SyncError{{ClientGeneratedID: "order-bad", Message: "store write failed"}},
			}, nil
		},
	}

	svc := NewService(apiMock, queue, testLogger())

	result, err := svc.Sync(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, 1, result.SyncedItems)
	assert.Equal(t, 1, result.FailedItems)

	// Успешная запись удалена, проблемная помечена для повтора
	require.Len(t, queue.RemoveCalls(), 1)
	assert.Equal(t, "order-ok", queue.RemoveCalls()[0].EntityID)

	require.Len(t, queue.MarkFailedCalls(), 1)
	assert.Equal(t, "order-bad", queue.MarkFailedCalls()[0].EntityID)
	assert.Equal(t, "store write failed", queue.MarkFailedCalls()[0].SyncErr)
}

func TestSync_ServerUnavailable_QueueUntouched(t *testing.T) {
	queue := &storage.PendingQueueMock{
		ListFunc: func(ctx context.Context) ([]*models.PendingSyncItem, error) {
			return []*models.PendingSyncItem{pendingItem("order-1")}, nil
		},
	}

	apiMock := &httpClient.ClientAPIMock{
		SyncFunc: func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewService(apiMock, queue, testLogger())

	result, err := svc.Sync(context.Background(), "token")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	// Очередь не трогаем - записи уйдут в следующем раунде
	assert.Empty(t, queue.RemoveCalls())
	assert.Empty(t, queue.MarkFailedCalls())
}

func TestSync_RemoveFailure_DoesNotAbort(t *testing.T) {
	queue := &storage.PendingQueueMock{
		ListFunc: func(ctx context.Context) ([]*models.PendingSyncItem, error) {
			return []*models.PendingSyncItem{pendingItem("order-1"), pendingItem("order-2")}, nil
		},
		RemoveFunc: func(ctx context.Context, entityID string) error {
			if entityID == "order-1" {
				return errors.New("bolt transaction failed")
			}
			return nil
		},
	}

	apiMock := &httpClient.ClientAPIMock{
		SyncFunc: func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{
				Synced: []api.Order{
					{ClientGeneratedID: "order-1"},
					{ClientGeneratedID: "order-2"},
				},
			}, nil
		},
	}

	svc := NewService(apiMock, queue, testLogger())

	result, err := svc.Sync(context.Background(), "token")

	require.NoError(t, err)
	// order-1 не удалился из очереди и не засчитан
	assert.Equal(t, 1, result.SyncedItems)
	assert.Len(t, queue.RemoveCalls(), 2)
}

func TestGetPendingSyncCount(t *testing.T) {
	queue := &storage.PendingQueueMock{
		CountFunc: func(ctx context.Context) (int, error) {
			return 7, nil
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, queue, testLogger())

	count, err := svc.GetPendingSyncCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestGetPendingSyncCount_Error(t *testing.T) {
	queue := &storage.PendingQueueMock{
		CountFunc: func(ctx context.Context) (int, error) {
			return 0, errors.New("storage is closed")
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, queue, testLogger())

	_, err := svc.GetPendingSyncCount(context.Background())

	assert.Error(t, err)
}
