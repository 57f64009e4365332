package conflict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvoronin/calcsync/internal/models"
)

func record(id string, payload string, updatedAt time.Time) *models.SyncableRecord {
	return &models.SyncableRecord{
		ID:         id,
		OwnerID:    "user-1",
		DeviceID:   "device-1",
		EntityType: models.EntityCalculation,
		SyncStatus: models.SyncStatusPending,
		Payload:    []byte(payload),
		CreatedAt:  updatedAt.Add(-time.Hour),
		UpdatedAt:  updatedAt,
	}
}

func TestDetectConflict(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		a    *models.SyncableRecord
		b    *models.SyncableRecord
		want bool
	}{
		{
			name: "same id different payload",
			a:    record("rec-1", `{"v":1}`, now),
			b:    record("rec-1", `{"v":2}`, now),
			want: true,
		},
		{
			name: "same id same payload",
			a:    record("rec-1", `{"v":1}`, now),
			b:    record("rec-1", `{"v":1}`, now.Add(time.Minute)),
			want: false,
		},
		{
			name: "different id",
			a:    record("rec-1", `{"v":1}`, now),
			b:    record("rec-2", `{"v":2}`, now),
			want: false,
		},
		{
			name: "nil side",
			a:    record("rec-1", `{"v":1}`, now),
			b:    nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectConflict(tt.a, tt.b))
			// symmetric
			assert.Equal(t, tt.want, DetectConflict(tt.b, tt.a))
		})
	}
}

func TestResolve_Strategies(t *testing.T) {
	newer := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	local := record("rec-1", `{"side":"local"}`, newer)
	remote := record("rec-1", `{"side":"remote"}`, older)

	tests := []struct {
		name        string
		local       *models.SyncableRecord
		remote      *models.SyncableRecord
		strategy    Strategy
		wantPayload string
	}{
		{
			name:        "client wins keeps local",
			local:       local,
			remote:      remote,
			strategy:    StrategyClientWins,
			wantPayload: `{"side":"local"}`,
		},
		{
			name:        "server wins keeps remote",
			local:       local,
			remote:      remote,
			strategy:    StrategyServerWins,
			wantPayload: `{"side":"remote"}`,
		},
		{
			name:        "keep newest picks newer local",
			local:       record("rec-1", `{"side":"local"}`, newer),
			remote:      record("rec-1", `{"side":"remote"}`, older),
			strategy:    StrategyKeepNewest,
			wantPayload: `{"side":"local"}`,
		},
		{
			name:        "keep newest picks newer remote",
			local:       record("rec-1", `{"side":"local"}`, older),
			remote:      record("rec-1", `{"side":"remote"}`, newer),
			strategy:    StrategyKeepNewest,
			wantPayload: `{"side":"remote"}`,
		},
		{
			name:        "keep newest tie goes to remote",
			local:       record("rec-1", `{"side":"local"}`, newer),
			remote:      record("rec-1", `{"side":"remote"}`, newer),
			strategy:    StrategyKeepNewest,
			wantPayload: `{"side":"remote"}`,
		},
		{
			name:        "merge behaves as keep newest",
			local:       record("rec-1", `{"side":"local"}`, newer),
			remote:      record("rec-1", `{"side":"remote"}`, older),
			strategy:    StrategyMerge,
			wantPayload: `{"side":"local"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.local, tt.remote, tt.strategy)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPayload, string(got.Payload))
		})
	}
}

func TestResolve_DoesNotMutateInputs(t *testing.T) {
	now := time.Now()
	local := record("rec-1", `{"side":"local"}`, now.Add(time.Minute))
	remote := record("rec-1", `{"side":"remote"}`, now)

	got, err := Resolve(local, remote, StrategyKeepNewest)
	require.NoError(t, err)

	// the result is a copy, not an alias of either input
	got.Payload[0] = 'X'
	got.SyncStatus = models.SyncStatusSynced

	assert.Equal(t, `{"side":"local"}`, string(local.Payload))
	assert.Equal(t, `{"side":"remote"}`, string(remote.Payload))
	assert.Equal(t, models.SyncStatusPending, local.SyncStatus)
}

func TestResolve_Idempotent(t *testing.T) {
	now := time.Now()
	local := record("rec-1", `{"side":"local"}`, now)
	remote := record("rec-1", `{"side":"remote"}`, now.Add(time.Minute))

	for _, strategy := range []Strategy{StrategyClientWins, StrategyServerWins, StrategyKeepNewest, StrategyMerge} {
		first, err := Resolve(local, remote, strategy)
		require.NoError(t, err)

		second, err := Resolve(first, remote, strategy)
		require.NoError(t, err)

		assert.Equal(t, first, second, "strategy %s", strategy)
	}
}

func TestResolve_UnknownStrategy(t *testing.T) {
	now := time.Now()
	_, err := Resolve(record("rec-1", "a", now), record("rec-1", "b", now), Strategy("coin_flip"))
	require.Error(t, err)
}

func TestResolvePair(t *testing.T) {
	now := time.Now()
	pair := models.ConflictPair{
		Local:  record("rec-1", `{"side":"local"}`, now),
		Remote: record("rec-1", `{"side":"remote"}`, now.Add(time.Minute)),
	}

	got, err := ResolvePair(pair, StrategyKeepNewest)
	require.NoError(t, err)
	assert.Equal(t, `{"side":"remote"}`, string(got.Payload))
}

func TestStrategyValid(t *testing.T) {
	assert.True(t, StrategyClientWins.Valid())
	assert.True(t, StrategyMerge.Valid())
	assert.False(t, Strategy("coin_flip").Valid())
}
