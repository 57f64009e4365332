package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvoronin/calcsync/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func testEntry(deviceID string, syncType models.SyncType, status models.LogStatus, ts time.Time) *models.SyncLogEntry {
	return &models.SyncLogEntry{
		ID:          uuid.New().String(),
		UserID:      "user-1",
		DeviceID:    deviceID,
		SyncType:    syncType,
		Status:      status,
		RecordCount: 3,
		Timestamp:   ts,
	}
}

func TestAppendAndQuery(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	entry := testEntry("device-1", models.SyncTypeBidirectional, models.LogStatusSuccess, now)
	require.NoError(t, s.Append(ctx, entry))

	entries, total, err := s.Query(ctx, models.LogFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, models.SyncTypeBidirectional, entries[0].SyncType)
	assert.Equal(t, models.LogStatusSuccess, entries[0].Status)
	assert.True(t, now.Equal(entries[0].Timestamp))
}

func TestQueryOrderedByTimestampDesc(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i := 0; i < 5; i++ {
		entry := testEntry("device-1", models.SyncTypeUpload, models.LogStatusSuccess, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.Append(ctx, entry))
	}

	entries, total, err := s.Query(ctx, models.LogFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, entries, 5)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Timestamp.After(entries[i-1].Timestamp),
			"entries must be ordered newest first")
	}
}

func TestQueryPagination(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i := 0; i < 7; i++ {
		entry := testEntry("device-1", models.SyncTypeDownload, models.LogStatusSuccess, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, s.Append(ctx, entry))
	}

	page1, total, err := s.Query(ctx, models.LogFilter{}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Len(t, page1, 3)

	page3, total, err := s.Query(ctx, models.LogFilter{}, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Len(t, page3, 1)

	// Out-of-range page returns no entries but the correct total
	page4, total, err := s.Query(ctx, models.LogFilter{}, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Empty(t, page4)
}

func TestQueryFilters(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, s.Append(ctx, testEntry("device-1", models.SyncTypeUpload, models.LogStatusSuccess, base)))
	require.NoError(t, s.Append(ctx, testEntry("device-1", models.SyncTypeDownload, models.LogStatusFailed, base.Add(time.Minute))))
	require.NoError(t, s.Append(ctx, testEntry("device-2", models.SyncTypeUpload, models.LogStatusSuccess, base.Add(2*time.Minute))))

	tests := []struct {
		name   string
		filter models.LogFilter
		want   int
	}{
		{name: "by device", filter: models.LogFilter{DeviceID: "device-1"}, want: 2},
		{name: "by sync type", filter: models.LogFilter{SyncType: models.SyncTypeUpload}, want: 2},
		{name: "by status", filter: models.LogFilter{Status: models.LogStatusFailed}, want: 1},
		{name: "by start time", filter: models.LogFilter{StartTime: base.Add(time.Minute)}, want: 2},
		{name: "by end time", filter: models.LogFilter{EndTime: base}, want: 1},
		{name: "combined", filter: models.LogFilter{DeviceID: "device-1", Status: models.LogStatusSuccess}, want: 1},
		{name: "no match", filter: models.LogFilter{DeviceID: "device-9"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, total, err := s.Query(ctx, tt.filter, 1, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
			assert.Len(t, entries, tt.want)
		})
	}
}

func TestQueryErrorMessagePreserved(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entry := testEntry("device-1", models.SyncTypeUpload, models.LogStatusFailed, time.Now().UTC())
	entry.ErrorMessage = fmt.Sprintf("network: %s", "remote unreachable")
	require.NoError(t, s.Append(ctx, entry))

	entries, _, err := s.Query(ctx, models.LogFilter{Status: models.LogStatusFailed}, 1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ErrorMessage, entries[0].ErrorMessage)
}
