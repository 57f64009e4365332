package storage

import (
	"context"
	"time"
)

//go:generate go tool moq -out metadata_mock.go . MetadataStore

// MetadataStore keeps small sync bookkeeping values: the per-entity-type
// lastSync watermark and the stable device identifier.
type MetadataStore interface {
	// GetLastSync returns the stored watermark for the entity type.
	// A zero time means the entity type has never synced.
	GetLastSync(ctx context.Context, entityType string) (time.Time, error)

	// SaveLastSync stores the watermark for the entity type
	SaveLastSync(ctx context.Context, entityType string, ts time.Time) error

	// DeviceID returns the stable device identifier, generating and
	// persisting one on first use.
	DeviceID(ctx context.Context) (string, error)
}
