package storage

import (
	"context"
	"time"

	"github.com/nvoronin/calcsync/internal/models"
)

//go:generate go tool moq -out records_mock.go . LocalStore

// LocalStore is the device-local record store consumed by the sync engine.
// Writes are atomic per record; SaveBatch commits all records of one sync
// pass or none of them.
type LocalStore interface {
	// Save inserts or updates a record by its ID
	Save(ctx context.Context, record *models.SyncableRecord) error

	// SaveBatch persists all records in a single transaction
	SaveBatch(ctx context.Context, records []*models.SyncableRecord) error

	// Get returns the record with the given ID or ErrRecordNotFound
	Get(ctx context.Context, id string) (*models.SyncableRecord, error)

	// Delete removes a record; deleting a missing record is a no-op
	Delete(ctx context.Context, id string) error

	// GetPending returns records of the entity type awaiting upload
	GetPending(ctx context.Context, entityType string) ([]*models.SyncableRecord, error)

	// QueryUpdatedSince returns records of the entity type updated after the timestamp
	QueryUpdatedSince(ctx context.Context, entityType string, since time.Time) ([]*models.SyncableRecord, error)

	// SetStatus updates the sync status of a stored record
	SetStatus(ctx context.Context, id string, status models.SyncStatus) error
}
