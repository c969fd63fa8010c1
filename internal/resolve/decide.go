package resolve

import (
	"fmt"
	"time"

	"github.com/lastgentlman/ordersync/internal/models"
)

// Outcome вердикт разрешения конфликта. Закрытый трехзначный тип:
// MergeRequired зарезервирован для будущего пофилдового слияния,
// текущая процедура решения его никогда не возвращает.
type Outcome int

const (
	// OutcomeLocalWins локальная версия побеждает
	OutcomeLocalWins Outcome = iota
	// OutcomeServerWins серверная версия побеждает
	OutcomeServerWins
	// OutcomeMergeRequired зарезервировано: требуется ручное/пофилдовое слияние
	OutcomeMergeRequired
)

// String возвращает текстовое представление вердикта
func (o Outcome) String() string {
	switch o {
	case OutcomeLocalWins:
		return "local_wins"
	case OutcomeServerWins:
		return "server_wins"
	case OutcomeMergeRequired:
		return "merge_required"
	default:
		return "unknown"
	}
}

// Verdict результат разрешения конфликта между локальной и серверной
// версией одного заказа.
type Verdict struct {
	DecidedAt   time.Time     `json:"decided_at"`  // DecidedAt время принятия решения
	Winner      *models.Order `json:"winner"`      // Winner победившая версия данных
	Explanation string        `json:"explanation"` // Explanation человекочитаемое объяснение
	Outcome     Outcome       `json:"outcome"`     // Outcome вердикт
}

// Decide применяет правило LWW (Last-Write-Wins) на уровне всей записи.
// Решение детерминировано и тотально: для любых двух корректных записей
// всегда возвращается вердикт.
//
// Правила:
//  1. Эффективные метки времени вычисляются с fallback-политикой
//     LastModifiedAt → CreatedAt → now.
//  2. Локальная метка строго позже → LocalWins.
//  3. Серверная метка строго позже → ServerWins.
//  4. Равенство → ServerWins (явный tie-break в пользу сервера,
//     чтобы повторное разрешение было идемпотентным).
func Decide(local, server *models.Order, now time.Time) Verdict {
	localTS := local.EffectiveTimestamp(now)
	serverTS := server.EffectiveTimestamp(now)

	switch CompareTimestamps(localTS, serverTS) {
	case LocalNewer:
		return Verdict{
			Outcome:     OutcomeLocalWins,
			Winner:      local,
			Explanation: fmt.Sprintf("local version is newer (modified %s)", localTS.Format(time.RFC3339)),
			DecidedAt:   now,
		}
	case ServerNewer:
		return Verdict{
			Outcome:     OutcomeServerWins,
			Winner:      server,
			Explanation: fmt.Sprintf("server version is newer (modified %s)", serverTS.Format(time.RFC3339)),
			DecidedAt:   now,
		}
	default:
		// Метки равны - tie-break в пользу сервера
		return Verdict{
			Outcome:     OutcomeServerWins,
			Winner:      server,
			Explanation: fmt.Sprintf("timestamps are equal (%s), server version kept", serverTS.Format(time.RFC3339)),
			DecidedAt:   now,
		}
	}
}
