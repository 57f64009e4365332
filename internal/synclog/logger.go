// Package synclog records the outcome of every sync pass and significant
// queue-processing event as an append-only audit trail.
package synclog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/internal/storage"
)

// Logger writes and queries sync audit entries. Entries are immutable once
// appended; there is no update or delete.
type Logger struct {
	store  storage.LogStore
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Logger over the given store.
func New(store storage.LogStore, logger *slog.Logger) *Logger {
	return &Logger{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Append persists one audit entry, assigning an id and timestamp when the
// caller left them empty.
func (l *Logger) Append(ctx context.Context, entry *models.SyncLogEntry) error {
	if entry == nil {
		return fmt.Errorf("nil log entry")
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = l.now()
	}

	if err := l.store.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append sync log entry: %w", err)
	}

	l.logger.Debug("sync log entry appended",
		"id", entry.ID,
		"sync_type", entry.SyncType,
		"status", entry.Status,
		"record_count", entry.RecordCount)

	return nil
}

// Query returns entries matching the filter, newest first, with the total
// match count for pagination.
func (l *Logger) Query(ctx context.Context, filter models.LogFilter, page, pageSize int) ([]*models.SyncLogEntry, int, error) {
	entries, total, err := l.store.Query(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sync log: %w", err)
	}
	return entries, total, nil
}
