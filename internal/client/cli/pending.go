package cli

import (
	"context"
	"fmt"
)

// RunPending выводит очередь записей, ожидающих синхронизации
func (c *Cli) RunPending(ctx context.Context) error {
	items, err := c.queue.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending items: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("No pending orders. Everything is synchronized.")
		return nil
	}

	fmt.Printf("=== Pending Orders (%d) ===\n", len(items))
	fmt.Println()

	for _, item := range items {
		fmt.Printf("ID:       %s\n", item.EntityID)
		fmt.Printf("Action:   %s\n", item.Action)
		fmt.Printf("Queued:   %s\n", item.QueuedAt.Format("2006-01-02 15:04:05"))
		if item.Order != nil {
			fmt.Printf("Client:   %s\n", item.Order.ClientName)
			fmt.Printf("Status:   %s\n", item.Order.Status)
		}
		if item.RetryCount > 0 {
			fmt.Printf("Retries:  %d (last error: %s)\n", item.RetryCount, item.LastError)
		}
		fmt.Println()
	}

	return nil
}

// RunStatus показывает количество записей, ожидающих синхронизации
func (c *Cli) RunStatus(ctx context.Context) error {
	count, err := c.syncService.GetPendingSyncCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending count: %w", err)
	}

	if count == 0 {
		fmt.Println("Everything is synchronized.")
		return nil
	}

	fmt.Printf("%d order(s) waiting for synchronization. Run 'ordersync sync'.\n", count)
	return nil
}
