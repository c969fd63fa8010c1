package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastgentlman/ordersync/internal/models"
)

func TestDecide_LocalWins(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	local := makeOrder()
	local.LastModifiedAt = now.Add(-1 * time.Minute)
	server := makeOrder()
	server.LastModifiedAt = now.Add(-2 * time.Minute)

	verdict := Decide(local, server, now)

	assert.Equal(t, OutcomeLocalWins, verdict.Outcome)
	assert.Same(t, local, verdict.Winner)
	assert.Contains(t, verdict.Explanation, "local version is newer")
	assert.Contains(t, verdict.Explanation, local.LastModifiedAt.Format(time.RFC3339))
	assert.Equal(t, now, verdict.DecidedAt)
}

func TestDecide_ServerWins(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	local := makeOrder()
	local.LastModifiedAt = now.Add(-10 * time.Second)
	server := makeOrder()
	server.LastModifiedAt = now

	verdict := Decide(local, server, now)

	assert.Equal(t, OutcomeServerWins, verdict.Outcome)
	assert.Same(t, server, verdict.Winner)
	assert.Contains(t, verdict.Explanation, "server version is newer")
}

func TestDecide_EqualTimestamps_ServerWins(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := now.Add(-5 * time.Minute)

	local := makeOrder()
	local.LastModifiedAt = ts
	server := makeOrder()
	server.LastModifiedAt = ts

	// Явный tie-break в пользу сервера
	verdict := Decide(local, server, now)

	assert.Equal(t, OutcomeServerWins, verdict.Outcome)
	assert.Same(t, server, verdict.Winner)
	assert.Contains(t, verdict.Explanation, "timestamps are equal")
}

func TestDecide_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	local := makeOrder()
	local.LastModifiedAt = now.Add(-1 * time.Minute)
	server := makeOrder()
	server.LastModifiedAt = now.Add(-2 * time.Minute)

	first := Decide(local, server, now)
	for i := 0; i < 50; i++ {
		verdict := Decide(local, server, now)
		assert.Equal(t, first.Outcome, verdict.Outcome)
		assert.Equal(t, first.Explanation, verdict.Explanation)
	}
}

func TestDecide_FallbackToCreatedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// У локальной записи нет LastModifiedAt - используется CreatedAt
	local := makeOrder()
	local.LastModifiedAt = time.Time{}
	local.CreatedAt = now.Add(-1 * time.Minute)

	server := makeOrder()
	server.LastModifiedAt = now.Add(-2 * time.Minute)

	verdict := Decide(local, server, now)

	assert.Equal(t, OutcomeLocalWins, verdict.Outcome)
}

func TestDecide_NoTimestamps_TreatedAsNewest(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Запись вообще без меток времени получает текущее время
	// и не может проиграть записи с явной меткой из прошлого
	local := makeOrder()
	local.LastModifiedAt = time.Time{}
	local.CreatedAt = time.Time{}

	server := makeOrder()
	server.LastModifiedAt = now.Add(-1 * time.Hour)

	verdict := Decide(local, server, now)

	require.Equal(t, OutcomeLocalWins, verdict.Outcome)
	assert.Same(t, local, verdict.Winner)
}

func TestDecide_BothMissingTimestamps_ServerWins(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	local := &models.Order{ClientGeneratedID: "a"}
	server := &models.Order{ClientGeneratedID: "a", ID: "order-1"}

	// Обе записи без меток получают now - равенство, побеждает сервер
	verdict := Decide(local, server, now)

	assert.Equal(t, OutcomeServerWins, verdict.Outcome)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "local_wins", OutcomeLocalWins.String())
	assert.Equal(t, "server_wins", OutcomeServerWins.String())
	assert.Equal(t, "merge_required", OutcomeMergeRequired.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
