// Package remote defines the client contract to the central sync service
// and its HTTP implementation. The engine consumes this contract; the
// service itself is an external collaborator.
package remote

import (
	"context"
	"errors"
	"time"

	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/pkg/api"
)

// ErrRecordNotFound is returned when the remote store has no record with
// the requested id.
var ErrRecordNotFound = errors.New("remote record not found")

//go:generate go tool moq -out client_mock.go . Client

// Client is the remote sync contract consumed by the coordinator and the
// offline queue. The remote service upserts by record id, so every mutation
// is safe to repeat under at-least-once delivery.
type Client interface {
	// FetchRecord returns the remote counterpart of a record, or
	// ErrRecordNotFound when the id is unknown remotely.
	FetchRecord(ctx context.Context, entityType, recordID string) (*models.SyncableRecord, error)

	// UpsertRecord inserts or overwrites one record remotely
	UpsertRecord(ctx context.Context, entityType string, record *models.SyncableRecord) error

	// DeleteRecord removes a record remotely; deleting a missing record is a no-op
	DeleteRecord(ctx context.Context, entityType, recordID string) error

	// FetchUpdatedSince returns records of the entity type updated after
	// the watermark, together with the server timestamp of the response.
	FetchUpdatedSince(ctx context.Context, entityType, deviceID string, since time.Time) ([]*models.SyncableRecord, time.Time, error)

	// SyncBatch runs one server-side sync round across multiple entity types
	SyncBatch(ctx context.Context, req api.BatchSyncRequest) (*api.BatchSyncResponse, error)

	// ResolveConflict reports an explicit conflict resolution to the server
	ResolveConflict(ctx context.Context, req api.ResolveConflictRequest) (*api.ResolveConflictResponse, error)

	// FetchLogs queries the server-side sync audit trail
	FetchLogs(ctx context.Context, filter models.LogFilter, page, pageSize int) (*api.LogsResponse, error)
}
