package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lastgentlman/ordersync/internal/server/storage"
	"github.com/lastgentlman/ordersync/pkg/api"
)

// OrdersHandler отдает текущее серверное состояние заказов
type OrdersHandler struct {
	logger  *slog.Logger
	storage storage.OrderStorage
}

// NewOrdersHandler creates a new orders handler
func NewOrdersHandler(logger *slog.Logger, store storage.OrderStorage) *OrdersHandler {
	return &OrdersHandler{
		logger:  logger,
		storage: store,
	}
}

// HandleList обрабатывает GET /api/v1/orders
func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	orders, err := h.storage.ListOrders(ctx)
	if err != nil {
		h.logger.Error("Failed to list orders", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := make([]api.Order, 0, len(orders))
	for _, order := range orders {
		response = append(response, orderToAPI(order))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
