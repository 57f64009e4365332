package storage

import (
	"context"

	"github.com/nvoronin/calcsync/internal/models"
)

//go:generate go tool moq -out logs_mock.go . LogStore

// LogStore persists the append-only sync audit trail. No update or delete
// operation exists; retention is an external concern.
type LogStore interface {
	// Append writes one log entry
	Append(ctx context.Context, entry *models.SyncLogEntry) error

	// Query returns entries matching the filter, ordered by timestamp
	// descending, paginated. The second value is the total match count.
	Query(ctx context.Context, filter models.LogFilter, page, pageSize int) ([]*models.SyncLogEntry, int, error)
}
