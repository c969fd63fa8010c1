package resolve

import "time"

// Ordering результат сравнения двух моментов времени
type Ordering int

const (
	// LocalNewer локальная версия строго новее серверной
	LocalNewer Ordering = iota
	// ServerNewer серверная версия строго новее локальной
	ServerNewer
	// Equal моменты времени совпадают
	Equal
)

// String возвращает текстовое представление результата сравнения
func (o Ordering) String() string {
	switch o {
	case LocalNewer:
		return "local_newer"
	case ServerNewer:
		return "server_newer"
	case Equal:
		return "equal"
	default:
		return "unknown"
	}
}

// CompareTimestamps сравнивает два момента времени (локальный и серверный).
// Чистая функция без побочных эффектов, задает тотальный порядок:
// результат всегда один из {LocalNewer, ServerNewer, Equal}.
// Fallback для отсутствующих меток времени выполняется вызывающей стороной
// через Order.EffectiveTimestamp.
func CompareTimestamps(local, server time.Time) Ordering {
	if local.After(server) {
		return LocalNewer
	}
	if server.After(local) {
		return ServerNewer
	}
	return Equal
}
