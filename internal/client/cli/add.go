package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lastgentlman/ordersync/internal/models"
)

// RunAdd интерактивно создает заказ и ставит его в офлайн-очередь
func (c *Cli) RunAdd(ctx context.Context) error {
	fmt.Println("=== New Order ===")

	clientName, err := readInput("Client name: ")
	if err != nil {
		return fmt.Errorf("failed to read client name: %w", err)
	}
	if clientName == "" {
		return fmt.Errorf("client name cannot be empty")
	}

	clientPhone, err := readInput("Client phone: ")
	if err != nil {
		return fmt.Errorf("failed to read client phone: %w", err)
	}

	deliveryDate, err := readInput("Delivery date (YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read delivery date: %w", err)
	}

	deliveryTime, err := readInput("Delivery time (HH:MM): ")
	if err != nil {
		return fmt.Errorf("failed to read delivery time: %w", err)
	}

	totalStr, err := readInput("Total: ")
	if err != nil {
		return fmt.Errorf("failed to read total: %w", err)
	}
	total := 0.0
	if totalStr != "" {
		total, err = strconv.ParseFloat(totalStr, 64)
		if err != nil {
			return fmt.Errorf("invalid total %q: %w", totalStr, err)
		}
	}

	notes, err := readInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	now := time.Now().UTC()
	order := &models.Order{
		// Корреляционный id присваивается клиентом, серверный id появится после sync
		ClientGeneratedID: uuid.New().String(),
		ClientName:        clientName,
		ClientPhone:       clientPhone,
		DeliveryDate:      deliveryDate,
		DeliveryTime:      deliveryTime,
		Total:             total,
		Notes:             notes,
		Status:            models.OrderStatusPending,
		CreatedAt:         now,
		LastModifiedAt:    now,
	}

	item := &models.PendingSyncItem{
		EntityID:   order.ClientGeneratedID,
		EntityType: "order",
		Action:     models.SyncActionCreate,
		QueuedAt:   now,
		Order:      order,
	}

	if err := c.queue.Enqueue(ctx, item); err != nil {
		return fmt.Errorf("failed to queue order: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Order queued for synchronization")
	fmt.Printf("ID: %s\n", order.ClientGeneratedID)

	return nil
}
