package synclog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/internal/storage"
)

func testLogger(store storage.LogStore) *Logger {
	return New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLogger_AppendFillsIDAndTimestamp(t *testing.T) {
	var captured *models.SyncLogEntry
	store := &storage.LogStoreMock{
		AppendFunc: func(ctx context.Context, entry *models.SyncLogEntry) error {
			captured = entry
			return nil
		},
	}

	l := testLogger(store)
	fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	err := l.Append(context.Background(), &models.SyncLogEntry{
		UserID:      "user-1",
		DeviceID:    "device-1",
		SyncType:    models.SyncTypeBidirectional,
		Status:      models.LogStatusSuccess,
		RecordCount: 7,
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.NotEmpty(t, captured.ID)
	assert.True(t, captured.Timestamp.Equal(fixed))
}

func TestLogger_AppendKeepsCallerIDAndTimestamp(t *testing.T) {
	var captured *models.SyncLogEntry
	store := &storage.LogStoreMock{
		AppendFunc: func(ctx context.Context, entry *models.SyncLogEntry) error {
			captured = entry
			return nil
		},
	}

	l := testLogger(store)
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	err := l.Append(context.Background(), &models.SyncLogEntry{
		ID:        "log-42",
		Timestamp: ts,
		Status:    models.LogStatusFailed,
	})
	require.NoError(t, err)

	assert.Equal(t, "log-42", captured.ID)
	assert.True(t, captured.Timestamp.Equal(ts))
}

func TestLogger_AppendWrapsStoreError(t *testing.T) {
	storeErr := errors.New("disk full")
	store := &storage.LogStoreMock{
		AppendFunc: func(ctx context.Context, entry *models.SyncLogEntry) error {
			return storeErr
		},
	}

	err := testLogger(store).Append(context.Background(), &models.SyncLogEntry{})
	require.ErrorIs(t, err, storeErr)
}

func TestLogger_AppendNilEntry(t *testing.T) {
	store := &storage.LogStoreMock{}
	require.Error(t, testLogger(store).Append(context.Background(), nil))
}

func TestLogger_QueryPassesThrough(t *testing.T) {
	want := []*models.SyncLogEntry{{ID: "log-1"}}
	store := &storage.LogStoreMock{
		QueryFunc: func(ctx context.Context, filter models.LogFilter, page, pageSize int) ([]*models.SyncLogEntry, int, error) {
			assert.Equal(t, "device-1", filter.DeviceID)
			assert.Equal(t, 2, page)
			assert.Equal(t, 10, pageSize)
			return want, 11, nil
		},
	}

	got, total, err := testLogger(store).Query(context.Background(), models.LogFilter{DeviceID: "device-1"}, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 11, total)
}
