package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lastgentlman/ordersync/internal/engine"
	"github.com/lastgentlman/ordersync/internal/models"
	"github.com/lastgentlman/ordersync/pkg/api"
)

// SyncHandler handles reconciliation requests from offline clients
type SyncHandler struct {
	logger *slog.Logger
	engine engine.Service
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, eng engine.Service) *SyncHandler {
	return &SyncHandler{
		logger: logger,
		engine: eng,
	}
}

// HandleSync обрабатывает POST /api/v1/sync
// Принимает очередь локальных записей клиента, прогоняет ее через движок
// разрешения конфликтов и возвращает полный отчет о частичном успехе.
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	// Получаем user_id из контекста (установлен AuthMiddleware).
	// Он же становится resolved_by в записях лога разрешений.
	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode sync request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	h.logger.Info("Sync request",
		"resolved_by", userID,
		"orders_count", len(req.Orders))

	// Конвертируем в доменные записи
	orders := make([]*models.Order, 0, len(req.Orders))
	for _, apiOrder := range req.Orders {
		orders = append(orders, orderFromAPI(apiOrder))
	}

	result, err := h.engine.Reconcile(ctx, orders, userID)
	if err != nil {
		// Сюда попадает только неправильное использование API,
		// ошибки отдельных записей уже в result.Errors
		h.logger.Error("Reconciliation failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := api.SyncResponse{
		Synced:      make([]api.Order, 0, len(result.Synced)),
		Errors:      make([]api.SyncError, 0, len(result.Errors)),
		Resolutions: make([]api.ResolutionEntry, 0, len(result.Resolutions)),
	}
	for _, order := range result.Synced {
		response.Synced = append(response.Synced, orderToAPI(order))
	}
	for _, syncErr := range result.Errors {
		response.Errors = append(response.Errors, api.SyncError{
			ClientGeneratedID: syncErr.ClientGeneratedID,
			Message:           syncErr.Message,
		})
	}
	for _, entry := range result.Resolutions {
		response.Resolutions = append(response.Resolutions, api.ResolutionEntry{
			OrderID:         entry.OrderID,
			Outcome:         entry.Outcome,
			Explanation:     entry.Explanation,
			ResolvedBy:      entry.ResolvedBy,
			ResolvedAt:      entry.ResolvedAt,
			LocalTimestamp:  entry.LocalTimestamp,
			ServerTimestamp: entry.ServerTimestamp,
			ConflictFields:  entry.ConflictFields,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}

	h.logger.Info("Sync completed",
		"resolved_by", userID,
		"synced", len(response.Synced),
		"errors", len(response.Errors),
		"resolutions", len(response.Resolutions))
}

// orderFromAPI конвертирует API заказ в доменную модель
func orderFromAPI(o api.Order) *models.Order {
	return &models.Order{
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
