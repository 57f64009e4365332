package storage

import (
	"context"

	"github.com/nvoronin/calcsync/internal/models"
)

//go:generate go tool moq -out queue_mock.go . QueueStore

// QueueStore is the durable backing store of the offline queue. The queue
// component is its only writer.
type QueueStore interface {
	// PutItem inserts or updates a queue item by its ID
	PutItem(ctx context.Context, item *models.OfflineQueueItem) error

	// DeleteItem removes a queue item; deleting a missing item is a no-op
	DeleteItem(ctx context.Context, id string) error

	// OldestItems returns up to limit items ordered by creation time ascending
	OldestItems(ctx context.Context, limit int) ([]*models.OfflineQueueItem, error)

	// CountItems returns the number of queued items
	CountItems(ctx context.Context) (int, error)
}
