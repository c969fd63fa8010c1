package api

import (
	"context"

	"github.com/lastgentlman/ordersync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс API клиента для взаимодействия с сервером
type ClientAPI interface {
	// Sync отправляет накопленные офлайн-изменения на сервер
	Sync(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error)

	// ListOrders возвращает текущее серверное состояние заказов
	ListOrders(ctx context.Context, accessToken string) ([]api.Order, error)

	// Health проверяет доступность сервера
	Health(ctx context.Context) error
}
