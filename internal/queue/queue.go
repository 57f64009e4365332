// Package queue implements the durable offline queue: operations that could
// not complete immediately are persisted and replayed once connectivity
// returns, with bounded retries and an exponential backoff schedule.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/internal/storage"
	"github.com/nvoronin/calcsync/internal/syncerr"
)

const (
	// DefaultMaxRetryAttempts is the retry budget before an item is
	// abandoned.
	DefaultMaxRetryAttempts = 5

	// DefaultDrainBatch bounds the items processed per drain invocation.
	DefaultDrainBatch = 50
)

// backoffSchedule maps an item's retry count to the minimum wait since its
// last attempt. Items past the schedule's end use the final interval.
var backoffSchedule = []time.Duration{
	5 * time.Second,
	15 * time.Second,
	30 * time.Second,
	60 * time.Second,
	300 * time.Second,
}

//go:generate go tool moq -out queue_mock.go . ConnectivitySource Replayer AuditLog

// ConnectivitySource reports whether network operations should be attempted.
// The network monitor is the production implementation.
type ConnectivitySource interface {
	State() models.NetworkState
}

// AuditLog records significant queue-processing outcomes: one entry per
// replayed item and per abandonment. The sync logger is the production
// implementation.
type AuditLog interface {
	Append(ctx context.Context, entry *models.SyncLogEntry) error
}

// Replayer re-executes one queued operation against the remote service.
// Replays run under at-least-once delivery: the remote side upserts by
// record id, so repeating an acknowledged-but-unrecorded success is a no-op.
type Replayer interface {
	Replay(ctx context.Context, item *models.OfflineQueueItem) error
}

// DrainStats summarizes one drain invocation.
type DrainStats struct {
	Processed int
	Succeeded int
	Failed    int
	Abandoned int
	Skipped   int
}

// Option configures an OfflineQueue.
type Option func(*OfflineQueue)

// WithMaxRetryAttempts overrides the per-item retry budget.
func WithMaxRetryAttempts(n int) Option {
	return func(q *OfflineQueue) {
		q.maxRetryAttempts = n
	}
}

// WithDrainBatch overrides the per-drain item cap.
func WithDrainBatch(n int) Option {
	return func(q *OfflineQueue) {
		q.drainBatch = n
	}
}

// OfflineQueue owns the queue store: nothing else writes queue items.
type OfflineQueue struct {
	store    storage.QueueStore
	network  ConnectivitySource
	replayer Replayer
	audit    AuditLog
	logger   *slog.Logger
	now      func() time.Time

	maxRetryAttempts int
	drainBatch       int
}

// New creates an offline queue over the given store.
func New(store storage.QueueStore, network ConnectivitySource, replayer Replayer, audit AuditLog, logger *slog.Logger, opts ...Option) *OfflineQueue {
	q := &OfflineQueue{
		store:            store,
		network:          network,
		replayer:         replayer,
		audit:            audit,
		logger:           logger,
		now:              time.Now,
		maxRetryAttempts: DefaultMaxRetryAttempts,
		drainBatch:       DefaultDrainBatch,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue durably persists an operation for later replay, assigning an id
// and creation time when the caller left them empty.
func (q *OfflineQueue) Enqueue(ctx context.Context, item *models.OfflineQueueItem) error {
	if item == nil {
		return fmt.Errorf("nil queue item")
	}
	if item.OperationType == "" || item.RecordID == "" {
		return syncerr.New(syncerr.KindValidation, "queue item requires an operation type and record id")
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = q.now()
	}

	if err := q.store.PutItem(ctx, item); err != nil {
		return fmt.Errorf("failed to enqueue operation: %w", err)
	}

	q.logger.Debug("operation queued",
		"id", item.ID,
		"operation", item.OperationType,
		"entity_type", item.EntityType,
		"record_id", item.RecordID)

	return nil
}

// Pending returns the number of queued items.
func (q *OfflineQueue) Pending(ctx context.Context) (int, error) {
	return q.store.CountItems(ctx)
}

// Drain replays queued items oldest-first, up to the configured batch cap.
// It is a no-op unless the network state is connected. Items that exhausted
// their retry budget are removed and logged as abandoned; items whose
// backoff interval has not yet elapsed are left untouched.
func (q *OfflineQueue) Drain(ctx context.Context) (DrainStats, error) {
	var stats DrainStats

	if !q.network.State().Online() {
		q.logger.Debug("drain skipped, network not connected",
			"status", q.network.State().Status)
		return stats, nil
	}

	items, err := q.store.OldestItems(ctx, q.drainBatch)
	if err != nil {
		return stats, fmt.Errorf("failed to load queued items: %w", err)
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		switch q.processItem(ctx, item) {
		case outcomeSucceeded:
			stats.Processed++
			stats.Succeeded++
		case outcomeFailed:
			stats.Processed++
			stats.Failed++
		case outcomeAbandoned:
			stats.Processed++
			stats.Abandoned++
		case outcomeSkipped:
			stats.Skipped++
		}
	}

	if stats.Processed > 0 {
		q.logger.Info("queue drained",
			"processed", stats.Processed,
			"succeeded", stats.Succeeded,
			"failed", stats.Failed,
			"abandoned", stats.Abandoned)
	}

	return stats, nil
}

type outcome int

const (
	outcomeSucceeded outcome = iota
	outcomeFailed
	outcomeAbandoned
	outcomeSkipped
)

func (q *OfflineQueue) processItem(ctx context.Context, item *models.OfflineQueueItem) outcome {
	if item.RetryCount >= q.maxRetryAttempts {
		return q.abandon(ctx, item)
	}

	if !q.backoffElapsed(item) {
		return outcomeSkipped
	}

	err := q.replayer.Replay(ctx, item)
	if err == nil {
		if err := q.store.DeleteItem(ctx, item.ID); err != nil {
			q.logger.Error("failed to remove replayed item, it will replay again",
				"id", item.ID, "error", err)
		}
		q.auditOutcome(ctx, item, models.LogStatusSuccess, "")
		return outcomeSucceeded
	}

	// Retrying an invalid credential is pointless: abandon immediately.
	if syncerr.Is(err, syncerr.KindAuth) {
		q.logger.Warn("queued operation hit an auth failure",
			"id", item.ID, "record_id", item.RecordID, "error", err)
		return q.abandon(ctx, item)
	}

	item.RetryCount++
	item.LastRetryAt = q.now()
	item.LastError = err.Error()

	if putErr := q.store.PutItem(ctx, item); putErr != nil {
		q.logger.Error("failed to persist retry bookkeeping",
			"id", item.ID, "error", putErr)
	}

	q.logger.Warn("queued operation failed, will retry",
		"id", item.ID,
		"record_id", item.RecordID,
		"retry_count", item.RetryCount,
		"error", err)

	return outcomeFailed
}

func (q *OfflineQueue) abandon(ctx context.Context, item *models.OfflineQueueItem) outcome {
	if err := q.store.DeleteItem(ctx, item.ID); err != nil {
		q.logger.Error("failed to remove abandoned item",
			"id", item.ID, "error", err)
		return outcomeFailed
	}

	q.logger.Error("queued operation abandoned after exhausting retries",
		"id", item.ID,
		"operation", item.OperationType,
		"entity_type", item.EntityType,
		"record_id", item.RecordID,
		"retry_count", item.RetryCount,
		"last_error", item.LastError)

	msg := fmt.Sprintf("abandoned %s of %s after %d attempts", item.OperationType, item.RecordID, item.RetryCount)
	if item.LastError != "" {
		msg += ": " + item.LastError
	}
	q.auditOutcome(ctx, item, models.LogStatusFailed, msg)

	return outcomeAbandoned
}

// auditOutcome writes one durable log entry for a finished queue item.
// Transient failures stay out of the audit trail: the item is still live
// and its eventual success or abandonment will be recorded.
func (q *OfflineQueue) auditOutcome(ctx context.Context, item *models.OfflineQueueItem, status models.LogStatus, errMsg string) {
	entry := &models.SyncLogEntry{
		SyncType:     models.SyncTypeUpload,
		Status:       status,
		RecordCount:  1,
		ErrorMessage: errMsg,
	}
	if err := q.audit.Append(ctx, entry); err != nil {
		q.logger.Error("failed to record queue outcome",
			"id", item.ID, "record_id", item.RecordID, "error", err)
	}
}

// backoffElapsed reports whether the item's backoff window since its last
// attempt has passed. Fresh items replay immediately.
func (q *OfflineQueue) backoffElapsed(item *models.OfflineQueueItem) bool {
	if item.RetryCount == 0 || item.LastRetryAt.IsZero() {
		return true
	}

	idx := item.RetryCount - 1
	if idx >= len(backoffSchedule) {
		idx = len(backoffSchedule) - 1
	}

	return q.now().Sub(item.LastRetryAt) >= backoffSchedule[idx]
}
