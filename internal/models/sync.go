package models

import "time"

// SyncAction тип локального изменения, поставленного в очередь офлайн
type SyncAction string

const (
	SyncActionCreate SyncAction = "create"
	SyncActionUpdate SyncAction = "update"
	SyncActionDelete SyncAction = "delete"
)

// PendingSyncItem представляет локальное изменение, ожидающее
// синхронизации с сервером. Создается при офлайн-мутации,
// удаляется после успешной синхронизации, при ошибке остается
// в очереди с увеличенным счетчиком попыток.
type PendingSyncItem struct {
	QueuedAt   time.Time  `json:"queued_at"`   // QueuedAt время постановки в очередь
	Order      *Order     `json:"order"`       // Order снимок заказа на момент изменения
	EntityType string     `json:"entity_type"` // EntityType тип сущности ("order")
	EntityID   string     `json:"entity_id"`   // EntityID корреляционный id сущности
	Action     SyncAction `json:"action"`      // Action вид изменения
	LastError  string     `json:"last_error"`  // LastError сообщение последней неудачной попытки
	RetryCount int        `json:"retry_count"` // RetryCount количество неудачных попыток
}

// ResolutionLogEntry представляет неизменяемую запись аудита об одном
// разрешенном конфликте. Записи только добавляются, никогда не
// изменяются и не удаляются этим ядром.
type ResolutionLogEntry struct {
	ResolvedAt      time.Time `json:"resolved_at"`      // ResolvedAt время принятия решения
	LocalTimestamp  time.Time `json:"local_timestamp"`  // LocalTimestamp эффективное время локальной версии
	ServerTimestamp time.Time `json:"server_timestamp"` // ServerTimestamp эффективное время серверной версии
	ConflictFields  []string  `json:"conflict_fields"`  // ConflictFields имена конфликтующих полей (диагностика)
	OrderID         string    `json:"order_id"`         // OrderID идентификатор заказа
	Outcome         string    `json:"outcome"`          // Outcome вердикт: local_wins / server_wins / merge_required
	Explanation     string    `json:"explanation"`      // Explanation человекочитаемое объяснение решения
	ResolvedBy      string    `json:"resolved_by"`      // ResolvedBy идентификатор resolver-а
}
