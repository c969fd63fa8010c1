package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastgentlman/ordersync/internal/models"
)

func makeOrder() *models.Order {
	return &models.Order{
		ID:                "order-1",
		ClientGeneratedID: "client-1",
		ClientName:        "Maria",
		ClientPhone:       "+521234567890",
		Total:             150.50,
		DeliveryDate:      "2025-06-02",
		DeliveryTime:      "14:00",
		Status:            models.OrderStatusPending,
		Notes:             "sin cebolla",
		LastModifiedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDetectFieldConflicts_NoConflicts(t *testing.T) {
	local := makeOrder()
	server := makeOrder()

	conflicts := DetectFieldConflicts(local, server, DefaultMonitoredFields())

	assert.Empty(t, conflicts)
}

func TestDetectFieldConflicts_SingleField(t *testing.T) {
	local := makeOrder()
	server := makeOrder()
	server.Status = models.OrderStatusDelivered

	conflicts := DetectFieldConflicts(local, server, DefaultMonitoredFields())

	require.Len(t, conflicts, 1)
	assert.Equal(t, FieldStatus, conflicts[0].Field)
	assert.Equal(t, models.OrderStatusPending, conflicts[0].LocalValue)
	assert.Equal(t, models.OrderStatusDelivered, conflicts[0].ServerValue)
	assert.Equal(t, local.LastModifiedAt, conflicts[0].LocalTimestamp)
	assert.Equal(t, server.LastModifiedAt, conflicts[0].ServerTimestamp)
}

func TestDetectFieldConflicts_MultipleFields_Ordered(t *testing.T) {
	local := makeOrder()
	server := makeOrder()
	server.ClientName = "Pedro"
	server.Total = 200.00
	server.Notes = "con cebolla"

	conflicts := DetectFieldConflicts(local, server, DefaultMonitoredFields())

	// Порядок конфликтов следует порядку отслеживаемых полей
	require.Len(t, conflicts, 3)
	assert.Equal(t, FieldClientName, conflicts[0].Field)
	assert.Equal(t, FieldTotal, conflicts[1].Field)
	assert.Equal(t, FieldNotes, conflicts[2].Field)
}

func TestDetectFieldConflicts_CustomFieldSet(t *testing.T) {
	local := makeOrder()
	server := makeOrder()
	server.ClientName = "Pedro"
	server.Status = models.OrderStatusCancelled

	// Отслеживаем только статус - расхождение по имени игнорируется
	conflicts := DetectFieldConflicts(local, server, []string{FieldStatus})

	require.Len(t, conflicts, 1)
	assert.Equal(t, FieldStatus, conflicts[0].Field)
}

func TestDetectFieldConflicts_UnknownFieldIgnored(t *testing.T) {
	local := makeOrder()
	server := makeOrder()
	server.ClientName = "Pedro"

	conflicts := DetectFieldConflicts(local, server, []string{"no_such_field"})

	assert.Empty(t, conflicts)
}

func TestDetectFieldConflicts_PureFunction(t *testing.T) {
	local := makeOrder()
	server := makeOrder()
	server.Total = 999.99

	localBefore := *local
	serverBefore := *server

	DetectFieldConflicts(local, server, DefaultMonitoredFields())

	// Детектор не изменяет входные записи
	assert.Equal(t, localBefore, *local)
	assert.Equal(t, serverBefore, *server)
}

func TestConflictFieldNames(t *testing.T) {
	local := makeOrder()
	server := makeOrder()
	server.ClientPhone = "+529999999999"
	server.DeliveryDate = "2025-06-03"

	names := ConflictFieldNames(DetectFieldConflicts(local, server, DefaultMonitoredFields()))

	assert.Equal(t, []string{FieldClientPhone, FieldDeliveryDate}, names)
	assert.Nil(t, ConflictFieldNames(nil))
}
