package api

import "time"

// Order представляет заказ в API формате
type Order struct {
	CreatedAt         time.Time `json:"created_at"`
	LastModifiedAt    time.Time `json:"last_modified_at"`
	ID                string    `json:"id,omitempty"`
	ClientGeneratedID string    `json:"client_generated_id"`
	ClientName        string    `json:"client_name"`
	ClientPhone       string    `json:"client_phone"`
	DeliveryDate      string    `json:"delivery_date"`
	DeliveryTime      string    `json:"delivery_time"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes"`
	ModifiedBy        string    `json:"modified_by,omitempty"`
	Total             float64   `json:"total"`
}

// SyncRequest представляет запрос на синхронизацию от офлайн-клиента
type SyncRequest struct {
	Orders []Order `json:"orders"` // локальные записи, ожидающие сверки
}

// SyncError описывает ошибку синхронизации одной записи
type SyncError struct {
	ClientGeneratedID string `json:"client_generated_id"`
	Message           string `json:"message"`
}

// ResolutionEntry представляет одну запись лога разрешений в API формате
type ResolutionEntry struct {
	ResolvedAt      time.Time `json:"resolved_at"`
	LocalTimestamp  time.Time `json:"local_timestamp"`
	ServerTimestamp time.Time `json:"server_timestamp"`
	ConflictFields  []string  `json:"conflict_fields,omitempty"`
	OrderID         string    `json:"order_id"`
	Outcome         string    `json:"outcome"`
	Explanation     string    `json:"explanation"`
	ResolvedBy      string    `json:"resolved_by"`
}

// SyncResponse представляет полный отчет о пакетной синхронизации:
// частичный успех вместо "все или ничего"
type SyncResponse struct {
	Synced      []Order           `json:"synced"`
	Errors      []SyncError       `json:"errors"`
	Resolutions []ResolutionEntry `json:"resolutions"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
