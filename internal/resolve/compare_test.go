package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompareTimestamps(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		local    time.Time
		server   time.Time
		expected Ordering
	}{
		{
			name:     "local newer",
			local:    base.Add(10 * time.Second),
			server:   base,
			expected: LocalNewer,
		},
		{
			name:     "server newer",
			local:    base,
			server:   base.Add(10 * time.Second),
			expected: ServerNewer,
		},
		{
			name:     "equal",
			local:    base,
			server:   base,
			expected: Equal,
		},
		{
			name:     "sub-second difference",
			local:    base.Add(time.Nanosecond),
			server:   base,
			expected: LocalNewer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompareTimestamps(tt.local, tt.server))
		})
	}
}

func TestCompareTimestamps_Deterministic(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	local := base.Add(5 * time.Second)

	// Повторное сравнение одних и тех же входов дает тот же результат
	for i := 0; i < 100; i++ {
		assert.Equal(t, LocalNewer, CompareTimestamps(local, base))
	}
}

func TestOrdering_String(t *testing.T) {
	assert.Equal(t, "local_newer", LocalNewer.String())
	assert.Equal(t, "server_newer", ServerNewer.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "unknown", Ordering(42).String())
}
