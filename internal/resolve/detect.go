package resolve

import (
	"time"

	"github.com/lastgentlman/ordersync/internal/models"
)

// Имена отслеживаемых полей заказа
const (
	FieldClientName   = "client_name"
	FieldClientPhone  = "client_phone"
	FieldTotal        = "total"
	FieldDeliveryDate = "delivery_date"
	FieldDeliveryTime = "delivery_time"
	FieldStatus       = "status"
	FieldNotes        = "notes"
)

// DefaultMonitoredFields возвращает набор полей, проверяемых детектором
// конфликтов по умолчанию. Набор - конфигурация, а не скрытая логика:
// вызывающая сторона может передать свой список в DetectFieldConflicts.
func DefaultMonitoredFields() []string {
	return []string{
		FieldClientName,
		FieldClientPhone,
		FieldTotal,
		FieldDeliveryDate,
		FieldDeliveryTime,
		FieldStatus,
		FieldNotes,
	}
}

// FieldConflict описывает одно расхождение между локальной и серверной
// версией заказа. Используется только для диагностики и аудита -
// в LWW решении на уровне записи не участвует.
type FieldConflict struct {
	LocalTimestamp  time.Time `json:"local_timestamp"`  // LocalTimestamp время локальной версии
	ServerTimestamp time.Time `json:"server_timestamp"` // ServerTimestamp время серверной версии
	Field           string    `json:"field"`            // Field имя конфликтующего поля
	LocalValue      any       `json:"local_value"`      // LocalValue локальное значение
	ServerValue     any       `json:"server_value"`     // ServerValue серверное значение
}

// DetectFieldConflicts сравнивает локальную и серверную версию заказа
// по заданному набору полей и возвращает упорядоченный список расхождений.
// Поле конфликтует, если значения не равны при строгом сравнении.
// Чистая функция: не изменяет входные записи.
func DetectFieldConflicts(local, server *models.Order, fields []string) []FieldConflict {
	var conflicts []FieldConflict

	for _, field := range fields {
		localValue := fieldValue(local, field)
		serverValue := fieldValue(server, field)

		if localValue != serverValue {
			conflicts = append(conflicts, FieldConflict{
				Field:           field,
				LocalValue:      localValue,
				ServerValue:     serverValue,
				LocalTimestamp:  local.LastModifiedAt,
				ServerTimestamp: server.LastModifiedAt,
			})
		}
	}

	return conflicts
}

// ConflictFieldNames возвращает имена полей из списка конфликтов.
// Используется при записи в лог разрешений.
func ConflictFieldNames(conflicts []FieldConflict) []string {
	if len(conflicts) == 0 {
		return nil
	}
	names := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		names = append(names, c.Field)
	}
	return names
}

// fieldValue извлекает значение отслеживаемого поля по имени.
// Неизвестные имена полей возвращают nil и никогда не конфликтуют.
func fieldValue(o *models.Order, field string) any {
	switch field {
	case FieldClientName:
		return o.ClientName
	case FieldClientPhone:
		return o.ClientPhone
	case FieldTotal:
		return o.Total
	case FieldDeliveryDate:
		return o.DeliveryDate
	case FieldDeliveryTime:
		return o.DeliveryTime
	case FieldStatus:
		return o.Status
	case FieldNotes:
		return o.Notes
	default:
		return nil
	}
}
