package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lastgentlman/ordersync/internal/models"
	"github.com/lastgentlman/ordersync/internal/resolve"
	"github.com/lastgentlman/ordersync/internal/server/storage"
)

//go:generate moq -out service_mock.go . Service

// ErrNoResolver возвращается при вызове Reconcile без идентификатора
// resolver-а. Это единственная ошибка, которую Reconcile возвращает сам:
// все ошибки уровня отдельных записей изолируются в BatchResult.Errors.
var ErrNoResolver = errors.New("resolver identity is required")

// Service определяет интерфейс движка разрешения конфликтов
type Service interface {
	// Reconcile выполняет сверку очереди локальных записей с сервером.
	// Возвращает полный отчет о частичном успехе: ошибка одной записи
	// никогда не прерывает пакет.
	Reconcile(ctx context.Context, orders []*models.Order, resolvedBy string) (*BatchResult, error)
}

// SyncError описывает ошибку синхронизации одной записи
type SyncError struct {
	ClientGeneratedID string `json:"client_generated_id"` // ClientGeneratedID корреляционный id записи
	Message           string `json:"message"`             // Message сообщение об ошибке
}

// BatchResult результат одного пакетного прогона синхронизации.
// Значение собирается локально внутри Reconcile и возвращается целиком:
// никакого разделяемого изменяемого состояния между шагами пакета нет.
type BatchResult struct {
	Synced      []*models.Order              `json:"synced"`      // Synced успешно синхронизированные записи
	Errors      []SyncError                  `json:"errors"`      // Errors ошибки по отдельным записям
	Resolutions []*models.ResolutionLogEntry `json:"resolutions"` // Resolutions записи лога разрешений за прогон
}

// Config конфигурация движка синхронизации
type Config struct {
	Now             func() time.Time // Now источник текущего времени (подменяется в тестах)
	MonitoredFields []string         // MonitoredFields набор полей для детектора конфликтов
	ItemDelay       time.Duration    // ItemDelay пауза между записями для ограничения нагрузки на store
}

// DefaultConfig возвращает конфигурацию движка по умолчанию
func DefaultConfig() Config {
	return Config{
		ItemDelay:       100 * time.Millisecond,
		MonitoredFields: resolve.DefaultMonitoredFields(),
		Now:             time.Now,
	}
}

// service реализует Service поверх серверного store и лога аудита
type service struct {
	orders storage.OrderStorage
	audit  storage.AuditStorage
	logger *slog.Logger
	cfg    Config
}

// NewService creates a new conflict resolution engine
func NewService(orders storage.OrderStorage, audit storage.AuditStorage, logger *slog.Logger, cfg Config) Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MonitoredFields == nil {
		cfg.MonitoredFields = resolve.DefaultMonitoredFields()
	}
	return &service{
		orders: orders,
		audit:  audit,
		logger: logger,
		cfg:    cfg,
	}
}

// Reconcile последовательно обрабатывает записи пакета:
// fetch → (create | detect → decide → apply → log) → next.
// Ошибки отдельных записей изолируются и попадают в отчет,
// пакет всегда доходит до конца.
func (s *service) Reconcile(ctx context.Context, orders []*models.Order, resolvedBy string) (*BatchResult, error) {
	if resolvedBy == "" {
		return nil, ErrNoResolver
	}

	s.logger.Info("Starting reconciliation batch",
		"resolved_by", resolvedBy,
		"pending_count", len(orders))

	result := &BatchResult{}

	for i, local := range orders {
		synced, entry, err := s.syncOrder(ctx, local, resolvedBy)
		if err != nil {
			s.logger.Warn("Failed to sync order",
				"client_generated_id", clientID(local),
				"error", err)
			result.Errors = append(result.Errors, SyncError{
				ClientGeneratedID: clientID(local),
				Message:           err.Error(),
			})
		} else {
			result.Synced = append(result.Synced, synced)
			if entry != nil {
				result.Resolutions = append(result.Resolutions, entry)
			}
		}

		// Пауза между записями ограничивает частоту запросов к store.
		// После последней записи пауза не нужна.
		if s.cfg.ItemDelay > 0 && i < len(orders)-1 {
			time.Sleep(s.cfg.ItemDelay)
		}
	}

	s.logger.Info("Reconciliation batch completed",
		"synced", len(result.Synced),
		"errors", len(result.Errors),
		"resolutions", len(result.Resolutions))

	return result, nil
}

// syncOrder выполняет полный цикл сверки одной записи.
// Возвращает запись в ее серверном состоянии и, если был конфликт,
// запись лога разрешений.
func (s *service) syncOrder(ctx context.Context, local *models.Order, resolvedBy string) (*models.Order, *models.ResolutionLogEntry, error) {
	if local == nil {
		return nil, nil, errors.New("nil order")
	}

	// Запись без корреляционного id отклоняется до обращения к store
	if local.ClientGeneratedID == "" {
		return nil, nil, errors.New("order has no client generated id")
	}

	server, err := s.orders.FindByClientGeneratedID(ctx, local.ClientGeneratedID)
	if err != nil {
		if !errors.Is(err, storage.ErrOrderNotFound) {
			return nil, nil, fmt.Errorf("failed to fetch server order: %w", err)
		}
		// Записи на сервере нет - это создание, конфликта быть не может
		created, err := s.createOrder(ctx, local)
		if err != nil {
			return nil, nil, err
		}
		return created, nil, nil
	}

	now := s.cfg.Now()

	// Детектор работает независимо от решения - только для наблюдаемости
	conflicts := resolve.DetectFieldConflicts(local, server, s.cfg.MonitoredFields)
	if len(conflicts) > 0 {
		s.logger.Debug("Field conflicts detected",
			"client_generated_id", local.ClientGeneratedID,
			"fields", resolve.ConflictFieldNames(conflicts))
	}

	verdict := resolve.Decide(local, server, now)

	applied, err := s.applyVerdict(ctx, verdict, server, resolvedBy, now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to apply verdict: %w", err)
	}

	entry := &models.ResolutionLogEntry{
		OrderID:         server.ID,
		Outcome:         verdict.Outcome.String(),
		Explanation:     verdict.Explanation,
		ResolvedBy:      resolvedBy,
		ResolvedAt:      verdict.DecidedAt,
		LocalTimestamp:  local.EffectiveTimestamp(now),
		ServerTimestamp: server.EffectiveTimestamp(now),
		ConflictFields:  resolve.ConflictFieldNames(conflicts),
	}
	s.logResolution(ctx, entry)

	return applied, entry, nil
}

// createOrder пушит чисто локальную запись на сервер как новую.
// Серверный идентификатор назначается здесь, если его еще нет.
func (s *service) createOrder(ctx context.Context, local *models.Order) (*models.Order, error) {
	created := local.Clone()
	if created.ID == "" {
		created.ID = uuid.New().String()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = s.cfg.Now()
	}

	if err := s.orders.Upsert(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Debug("Created order on server",
		"order_id", created.ID,
		"client_generated_id", created.ClientGeneratedID)

	return created, nil
}

// applyVerdict персистит победившую версию.
// LocalWins: локальные данные записываются на сервер с обновленным
// LastModifiedAt и идентификатором resolver-а.
// ServerWins: запись не требуется - сервер уже хранит победителя.
// Ошибки записи пробрасываются вызывающему, retry здесь нет.
func (s *service) applyVerdict(ctx context.Context, verdict resolve.Verdict, server *models.Order, resolvedBy string, now time.Time) (*models.Order, error) {
	switch verdict.Outcome {
	case resolve.OutcomeLocalWins:
		winner := verdict.Winner.Clone()
		winner.ID = server.ID
		if winner.CreatedAt.IsZero() {
			winner.CreatedAt = server.CreatedAt
		}
		winner.LastModifiedAt = now
		winner.ModifiedBy = resolvedBy

		if err := s.orders.Upsert(ctx, winner); err != nil {
			return nil, err
		}
		return winner, nil

	case resolve.OutcomeServerWins:
		return server, nil

	default:
		// MergeRequired зарезервирован и процедурой решения не выдается
		return nil, fmt.Errorf("unsupported resolution outcome: %s", verdict.Outcome)
	}
}

// logResolution записывает решение в лог аудита. Ошибка аудита
// логируется и всегда отбрасывается: уже выполненная запись данных
// не откатывается и не помечается как ошибочная из-за аудита.
func (s *service) logResolution(ctx context.Context, entry *models.ResolutionLogEntry) {
	if err := s.audit.AppendResolution(ctx, entry); err != nil {
		s.logger.Warn("Failed to append resolution log entry",
			"order_id", entry.OrderID,
			"outcome", entry.Outcome,
			"error", err)
	}
}

// clientID безопасно извлекает корреляционный id для отчета об ошибке
func clientID(o *models.Order) string {
	if o == nil {
		return ""
	}
	return o.ClientGeneratedID
}
