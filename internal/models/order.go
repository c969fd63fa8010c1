package models

import "time"

// Order представляет бизнес-заказ, который синхронизируется между
// офлайн-клиентами и сервером. Конфликты разрешаются по правилу
// LWW (Last-Write-Wins) на уровне всей записи.
type Order struct {
	CreatedAt         time.Time `json:"created_at"`          // CreatedAt время создания заказа
	LastModifiedAt    time.Time `json:"last_modified_at"`    // LastModifiedAt авторитетное время для разрешения конфликтов
	ID                string    `json:"id"`                  // ID серверный идентификатор (UUID), пустой для чисто локальной записи
	ClientGeneratedID string    `json:"client_generated_id"` // ClientGeneratedID корреляционный id, назначается клиентом, уникален
	ClientName        string    `json:"client_name"`         // ClientName имя клиента
	ClientPhone       string    `json:"client_phone"`        // ClientPhone телефон клиента
	DeliveryDate      string    `json:"delivery_date"`       // DeliveryDate дата доставки (YYYY-MM-DD)
	DeliveryTime      string    `json:"delivery_time"`       // DeliveryTime время доставки (HH:MM)
	Status            string    `json:"status"`              // Status статус заказа
	Notes             string    `json:"notes"`               // Notes примечания
	ModifiedBy        string    `json:"modified_by"`         // ModifiedBy идентификатор последнего изменившего (resolver)
	Total             float64   `json:"total"`               // Total сумма заказа
}

// Статусы заказа
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// EffectiveTimestamp возвращает авторитетное время записи для сравнения версий.
// Политика fallback: LastModifiedAt → CreatedAt → now.
// Запись без метаданных времени считается самой свежей, чтобы она
// не была молча потеряна при разрешении конфликта.
func (o *Order) EffectiveTimestamp(now time.Time) time.Time {
	if !o.LastModifiedAt.IsZero() {
		return o.LastModifiedAt
	}
	if !o.CreatedAt.IsZero() {
		return o.CreatedAt
	}
	return now
}

// Clone создает глубокую копию заказа
func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}
