package cli

import (
	"context"
	"fmt"
)

// RunSync отправляет офлайн-очередь на сервер и печатает отчет о сверке
func (c *Cli) RunSync(ctx context.Context) error {
	if err := c.requireToken(); err != nil {
		return err
	}

	fmt.Println("=== Synchronization ===")
	fmt.Println()

	result, err := c.syncService.Sync(ctx, c.accessToken)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.PushedItems == 0 {
		fmt.Println("Nothing to sync.")
		return nil
	}

	fmt.Println("✓ Synchronization completed")
	fmt.Println()
	fmt.Printf("Pushed to server:  %d order(s)\n", result.PushedItems)
	fmt.Printf("Accepted:          %d order(s)\n", result.SyncedItems)
	if result.FailedItems > 0 {
		fmt.Printf("Rejected:          %d order(s) (will retry)\n", result.FailedItems)
	}
	if result.Resolutions > 0 {
		fmt.Printf("Conflicts decided: %d\n", result.Resolutions)
	}

	return nil
}

// RunOrders выводит текущее серверное состояние заказов
func (c *Cli) RunOrders(ctx context.Context) error {
	if err := c.requireToken(); err != nil {
		return err
	}

	orders, err := c.apiClient.ListOrders(ctx, c.accessToken)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Println("No orders on the server.")
		return nil
	}

	fmt.Printf("=== Orders (%d) ===\n", len(orders))
	fmt.Println()

	for _, order := range orders {
		fmt.Printf("ID:       %s\n", order.ID)
		fmt.Printf("Client:   %s\n", order.ClientName)
		fmt.Printf("Status:   %s\n", order.Status)
		fmt.Printf("Total:    %.2f\n", order.Total)
		if !order.LastModifiedAt.IsZero() {
			fmt.Printf("Modified: %s", order.LastModifiedAt.Format("2006-01-02 15:04:05"))
			if order.ModifiedBy != "" {
				fmt.Printf(" by %s", order.ModifiedBy)
			}
			fmt.Println()
		}
		fmt.Println()
	}

	return nil
}
