package sync

import (
	"context"
	"fmt"
	"log/slog"

	httpClient "github.com/lastgentlman/ordersync/internal/client/api"
	"github.com/lastgentlman/ordersync/internal/client/storage"
	"github.com/lastgentlman/ordersync/internal/models"
	"github.com/lastgentlman/ordersync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync отправляет очередь офлайн-изменений на сервер
	Sync(ctx context.Context, accessToken string) (*SyncResult, error)

	// GetPendingSyncCount возвращает количество записей, ожидающих синхронизации
	GetPendingSyncCount(ctx context.Context) (int, error)
}

// Service handles synchronization between client and server
type service struct {
	apiClient httpClient.ClientAPI
	queue     storage.PendingQueue
	logger    *slog.Logger
}

// NewService creates a new sync service
func NewService(apiClient httpClient.ClientAPI, queue storage.PendingQueue, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		queue:     queue,
		logger:    logger,
	}
}

// SyncResult contains sync operation results
type SyncResult struct {
	PushedItems int // количество отправленных на сервер записей
	SyncedItems int // количество подтвержденных сервером записей
	FailedItems int // количество записей, отклоненных сервером
	Resolutions int // количество записей лога разрешений в ответе
}

// Sync performs one synchronization round with the server
// 1. Drains the pending queue into a single batch request
// 2. Removes items confirmed by the server
// 3. Marks per-item failures for retry on the next round
func (s *service) Sync(ctx context.Context, accessToken string) (*SyncResult, error) {
	result := &SyncResult{}

	// Получаем очередь накопленных офлайн-изменений
	items, err := s.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending items: %w", err)
	}

	if len(items) == 0 {
		s.logger.Info("Nothing to sync")
		return result, nil
	}

	s.logger.Info("Starting synchronization", "pending_items", len(items))
	result.PushedItems = len(items)

	// Конвертируем очередь в API формат
	apiOrders := make([]api.Order, 0, len(items))
	for _, item := range items {
		if item.Order == nil {
			continue
		}
		apiOrders = append(apiOrders, orderToAPI(item.Order))
	}

	syncResp, err := s.apiClient.Sync(ctx, accessToken, api.SyncRequest{Orders: apiOrders})
	if err != nil {
		// Сервер недоступен - очередь остается нетронутой до следующего раунда
		return nil, fmt.Errorf("sync request failed: %w", err)
	}

	s.logger.Info("Received server response",
		"synced", len(syncResp.Synced),
		"errors", len(syncResp.Errors),
		"resolutions", len(syncResp.Resolutions))

	result.Resolutions = len(syncResp.Resolutions)

	// Убираем из очереди записи, подтвержденные сервером
	for _, order := range syncResp.Synced {
		if err := s.queue.Remove(ctx, order.ClientGeneratedID); err != nil {
			s.logger.Warn("Failed to remove synced item from queue",
				"client_generated_id", order.ClientGeneratedID,
				"error", err)
			continue
		}
		result.SyncedItems++
	}

	// Помечаем отклоненные записи для повторной отправки
	for _, syncErr := range syncResp.Errors {
		result.FailedItems++
		if err := s.queue.MarkFailed(ctx, syncErr.ClientGeneratedID, syncErr.Message); err != nil {
			s.logger.Warn("Failed to mark item as failed",
				"client_generated_id", syncErr.ClientGeneratedID,
				"error", err)
		}
	}

	s.logger.Info("Synchronization completed",
		"pushed", result.PushedItems,
		"synced", result.SyncedItems,
		"failed", result.FailedItems,
		"resolutions", result.Resolutions)

	return result, nil
}

// GetPendingSyncCount возвращает количество записей, ожидающих синхронизации
func (s *service) GetPendingSyncCount(ctx context.Context) (int, error) {
	count, err := s.queue.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending items: %w", err)
	}
	return count, nil
}

// orderToAPI конвертирует доменную модель в API формат
func orderToAPI(o *models.Order) api.Order {
	return api.Order{
		ID:                o.ID,
		ClientGeneratedID: o.ClientGeneratedID,
		ClientName:        o.ClientName,
		ClientPhone:       o.ClientPhone,
		Total:             o.Total,
		DeliveryDate:      o.DeliveryDate,
		DeliveryTime:      o.DeliveryTime,
		Status:            o.Status,
		Notes:             o.Notes,
		ModifiedBy:        o.ModifiedBy,
		CreatedAt:         o.CreatedAt,
		LastModifiedAt:    o.LastModifiedAt,
	}
}
