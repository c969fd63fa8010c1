package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	httpClient "github.com/lastgentlman/ordersync/internal/client/api"
	"github.com/lastgentlman/ordersync/internal/client/storage"
	"github.com/lastgentlman/ordersync/internal/client/sync"
)

type Cli struct {
	apiClient   httpClient.ClientAPI
	queue       storage.PendingQueue
	syncService sync.Service
	accessToken string
}

func New(apiClient httpClient.ClientAPI, queue storage.PendingQueue, syncService sync.Service, accessToken string) *Cli {
	return &Cli{
		apiClient:   apiClient,
		queue:       queue,
		syncService: syncService,
		accessToken: accessToken,
	}
}

func PrintUsage() {
	fmt.Println("OrderSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ordersync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: ordersync-client.db)")
	fmt.Println("  --token TOKEN    Access token (or ORDERSYNC_TOKEN env)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  add              Queue a new order locally")
	fmt.Println("  pending          List orders waiting for sync")
	fmt.Println("  status           Show pending sync count")
	fmt.Println("  sync             Push the offline queue to the server")
	fmt.Println("  orders           Show current server state of orders")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ordersync add")
	fmt.Println("  ordersync pending")
	fmt.Println()
	fmt.Println("  export ORDERSYNC_TOKEN='eyJhb...'")
	fmt.Println("  ordersync sync")
	fmt.Println("  ordersync --server https://example.com orders")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// requireToken проверяет что токен задан для команд, ходящих на сервер
func (c *Cli) requireToken() error {
	if c.accessToken == "" {
		return fmt.Errorf("access token is required: set --token or ORDERSYNC_TOKEN")
	}
	return nil
}
