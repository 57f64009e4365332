package queue

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
	"github.com/nvoronin/calcsync/internal/syncerr"
)

func connectedSource() *ConnectivitySourceMock {
	return &ConnectivitySourceMock{
		StateFunc: func() models.NetworkState {
			return models.NetworkState{Status: models.NetworkConnected, Type: models.NetworkTypeWifi}
		},
	}
}

func disconnectedSource() *ConnectivitySourceMock {
	return &ConnectivitySourceMock{
		StateFunc: func() models.NetworkState {
			return models.NetworkState{Status: models.NetworkDisconnected, Type: models.NetworkTypeNone}
		},
	}
}

// memQueueStore is an in-memory QueueStore keeping insertion order.
type memQueueStore struct {
	items []*models.OfflineQueueItem
}

func (s *memQueueStore) PutItem(_ context.Context, item *models.OfflineQueueItem) error {
	for i, existing := range s.items {
		if existing.ID == item.ID {
			s.items[i] = item.Clone()
			return nil
		}
	}
	s.items = append(s.items, item.Clone())
	return nil
}

func (s *memQueueStore) DeleteItem(_ context.Context, id string) error {
	for i, existing := range s.items {
		if existing.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memQueueStore) OldestItems(_ context.Context, limit int) ([]*models.OfflineQueueItem, error) {
	out := make([]*models.OfflineQueueItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item.Clone())
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *memQueueStore) CountItems(_ context.Context) (int, error) {
	return len(s.items), nil
}

var _ storage.QueueStore = (*memQueueStore)(nil)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func nopAudit() *AuditLogMock {
	return &AuditLogMock{
		AppendFunc: func(ctx context.Context, entry *models.SyncLogEntry) error { return nil },
	}
}

func queueItem(id string, createdAt time.Time) *models.OfflineQueueItem {
	return &models.OfflineQueueItem{
		ID:              id,
		OperationType:   models.OperationUpdate,
		EntityType:      models.EntityCalculation,
		RecordID:        "rec-" + id,
		PayloadSnapshot: []byte(`{"v":1}`),
		CreatedAt:       createdAt,
	}
}

func TestEnqueue_AssignsIDAndCreatedAt(t *testing.T) {
	store := &memQueueStore{}
	q := New(store, connectedSource(), &ReplayerMock{}, nopAudit(), discard())

	item := &models.OfflineQueueItem{
		OperationType: models.OperationCreate,
		EntityType:    models.EntityCalculation,
		RecordID:      "rec-1",
	}
	require.NoError(t, q.Enqueue(context.Background(), item))

	assert.NotEmpty(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())

	count, err := q.Pending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEnqueue_RejectsIncompleteItem(t *testing.T) {
	q := New(&memQueueStore{}, connectedSource(), &ReplayerMock{}, nopAudit(), discard())

	err := q.Enqueue(context.Background(), &models.OfflineQueueItem{RecordID: "rec-1"})
	require.Error(t, err)
	assert.Equal(t, syncerr.KindValidation, syncerr.KindOf(err))
}

func TestDrain_SkipsWhenNotConnected(t *testing.T) {
	store := &memQueueStore{}
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, item *models.OfflineQueueItem) error { return nil },
	}
	q := New(store, disconnectedSource(), replayer, nopAudit(), discard())

	require.NoError(t, q.Enqueue(context.Background(), queueItem("a", time.Now())))

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Processed)
	assert.Empty(t, replayer.ReplayCalls())

	count, _ := q.Pending(context.Background())
	assert.Equal(t, 1, count)
}

func TestDrain_ReplaysOldestFirstAndRemovesOnSuccess(t *testing.T) {
	store := &memQueueStore{}
	var replayed []string
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, item *models.OfflineQueueItem) error {
			replayed = append(replayed, item.ID)
			return nil
		},
	}
	q := New(store, connectedSource(), replayer, nopAudit(), discard())

	base := time.Now()
	require.NoError(t, q.Enqueue(context.Background(), queueItem("first", base.Add(-2*time.Hour))))
	require.NoError(t, q.Enqueue(context.Background(), queueItem("second", base.Add(-time.Hour))))

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, replayed)
	assert.Equal(t, 2, stats.Succeeded)

	count, _ := q.Pending(context.Background())
	assert.Zero(t, count)
}

func TestDrain_FailureIncrementsRetryBookkeeping(t *testing.T) {
	store := &memQueueStore{}
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, item *models.OfflineQueueItem) error {
			return syncerr.New(syncerr.KindNetwork, "connection reset")
		},
	}
	q := New(store, connectedSource(), replayer, nopAudit(), discard())
	fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return fixed }

	require.NoError(t, q.Enqueue(context.Background(), queueItem("a", fixed.Add(-time.Hour))))

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)

	items, _ := store.OldestItems(context.Background(), 0)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].RetryCount)
	assert.True(t, items[0].LastRetryAt.Equal(fixed))
	assert.Contains(t, items[0].LastError, "connection reset")
}

func TestDrain_BackoffGatesRetries(t *testing.T) {
	store := &memQueueStore{}
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, item *models.OfflineQueueItem) error { return nil },
	}
	q := New(store, connectedSource(), replayer, nopAudit(), discard())

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return now }

	item := queueItem("a", now.Add(-time.Hour))
	item.RetryCount = 2 // backoff window is 15s after the second attempt
	item.LastRetryAt = now.Add(-10 * time.Second)
	require.NoError(t, store.PutItem(context.Background(), item))

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Empty(t, replayer.ReplayCalls())

	// once the window elapses the item replays
	now = now.Add(6 * time.Second)
	stats, err = q.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Succeeded)
}

func TestDrain_BackoffSchedule(t *testing.T) {
	q := New(&memQueueStore{}, connectedSource(), &ReplayerMock{}, nopAudit(), discard())
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return now }

	tests := []struct {
		retryCount int
		wait       time.Duration
		elapsed    bool
	}{
		{retryCount: 0, wait: 0, elapsed: true},
		{retryCount: 1, wait: 4 * time.Second, elapsed: false},
		{retryCount: 1, wait: 5 * time.Second, elapsed: true},
		{retryCount: 2, wait: 14 * time.Second, elapsed: false},
		{retryCount: 3, wait: 30 * time.Second, elapsed: true},
		{retryCount: 4, wait: 59 * time.Second, elapsed: false},
		{retryCount: 5, wait: 300 * time.Second, elapsed: true},
		// retry counts past the schedule reuse the final interval
		{retryCount: 9, wait: 299 * time.Second, elapsed: false},
		{retryCount: 9, wait: 301 * time.Second, elapsed: true},
	}

	for _, tt := range tests {
		item := &models.OfflineQueueItem{
			RetryCount:  tt.retryCount,
			LastRetryAt: now.Add(-tt.wait),
		}
		assert.Equal(t, tt.elapsed, q.backoffElapsed(item),
			"retryCount=%d wait=%s", tt.retryCount, tt.wait)
	}
}

func TestDrain_AbandonsExhaustedItems(t *testing.T) {
	store := &memQueueStore{}
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, item *models.OfflineQueueItem) error { return nil },
	}
	q := New(store, connectedSource(), replayer, nopAudit(), discard(), WithMaxRetryAttempts(3))

	item := queueItem("worn-out", time.Now().Add(-time.Hour))
	item.RetryCount = 3
	require.NoError(t, store.PutItem(context.Background(), item))

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Abandoned)
	// abandoned items never reach the remote service again
	assert.Empty(t, replayer.ReplayCalls())

	count, _ := q.Pending(context.Background())
	assert.Zero(t, count)
}

func TestDrain_AuthFailureIsNotRetried(t *testing.T) {
	store := &memQueueStore{}
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, item *models.OfflineQueueItem) error {
			return syncerr.New(syncerr.KindAuth, "token rejected")
		},
	}
	q := New(store, connectedSource(), replayer, nopAudit(), discard())

	require.NoError(t, q.Enqueue(context.Background(), queueItem("a", time.Now())))

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Abandoned)

	count, _ := q.Pending(context.Background())
	assert.Zero(t, count)
}

func TestDrain_RespectsBatchCap(t *testing.T) {
	store := &memQueueStore{}
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, item *models.OfflineQueueItem) error { return nil },
	}
	q := New(store, connectedSource(), replayer, nopAudit(), discard(), WithDrainBatch(2))

	base := time.Now()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, q.Enqueue(context.Background(), queueItem(id, base)))
	}

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Succeeded)

	count, _ := q.Pending(context.Background())
	assert.Equal(t, 1, count)
}

func TestDrain_AppendsAuditEntryPerReplaySuccess(t *testing.T) {
	store := &memQueueStore{}
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, item *models.OfflineQueueItem) error { return nil },
	}
	audit := nopAudit()
	q := New(store, connectedSource(), replayer, audit, discard())

	base := time.Now()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, q.Enqueue(context.Background(), queueItem(id, base)))
	}

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Succeeded)

	entries := audit.AppendCalls()
	require.Len(t, entries, 5)
	for _, call := range entries {
		assert.Equal(t, models.SyncTypeUpload, call.Entry.SyncType)
		assert.Equal(t, models.LogStatusSuccess, call.Entry.Status)
		assert.Equal(t, 1, call.Entry.RecordCount)
		assert.Empty(t, call.Entry.ErrorMessage)
	}
}

func TestDrain_AppendsAuditEntryOnAbandonment(t *testing.T) {
	store := &memQueueStore{}
	audit := nopAudit()
	q := New(store, connectedSource(), &ReplayerMock{}, audit, discard(), WithMaxRetryAttempts(3))

	item := queueItem("worn-out", time.Now().Add(-time.Hour))
	item.RetryCount = 3
	item.LastError = "connection reset"
	require.NoError(t, store.PutItem(context.Background(), item))

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, stats.Abandoned)

	entries := audit.AppendCalls()
	require.Len(t, entries, 1)
	assert.Equal(t, models.LogStatusFailed, entries[0].Entry.Status)
	assert.Contains(t, entries[0].Entry.ErrorMessage, "abandoned")
	assert.Contains(t, entries[0].Entry.ErrorMessage, "connection reset")
}

func TestDrain_TransientFailureDoesNotAppendAuditEntry(t *testing.T) {
	store := &memQueueStore{}
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, item *models.OfflineQueueItem) error {
			return syncerr.New(syncerr.KindNetwork, "connection reset")
		},
	}
	audit := nopAudit()
	q := New(store, connectedSource(), replayer, audit, discard())

	require.NoError(t, q.Enqueue(context.Background(), queueItem("a", time.Now())))

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)
	assert.Empty(t, audit.AppendCalls())
}

func TestDrain_TransientFailureLeavesItemQueued(t *testing.T) {
	store := &memQueueStore{}
	attempts := 0
	replayer := &ReplayerMock{
		ReplayFunc: func(ctx context.Context, item *models.OfflineQueueItem) error {
			attempts++
			if attempts == 1 {
				return errors.New("temporary hiccup")
			}
			return nil
		},
	}
	q := New(store, connectedSource(), replayer, nopAudit(), discard())
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return now }

	require.NoError(t, q.Enqueue(context.Background(), queueItem("a", now.Add(-time.Minute))))

	stats, err := q.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)

	now = now.Add(10 * time.Second)
	stats, err = q.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Succeeded)

	count, _ := q.Pending(context.Background())
	assert.Zero(t, count)
}
