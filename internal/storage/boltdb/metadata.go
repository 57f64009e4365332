package boltdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/nvoronin/calcsync/internal/storage"
)

var (
	// Metadata bucket keys
	keyDeviceID       = []byte("device_id")
	keyEncryptionSalt = []byte("encryption_salt")

	lastSyncPrefix = "last_sync:"
)

// GetLastSync returns the stored lastSync watermark for the entity type.
// A zero time means the entity type has never synced.
func (s *Storage) GetLastSync(ctx context.Context, entityType string) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var ts time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMetadata).Get([]byte(lastSyncPrefix + entityType))
		if data == nil {
			return nil
		}
		return ts.UnmarshalBinary(data)
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}

	return ts, nil
}

// SaveLastSync stores the lastSync watermark for the entity type
func (s *Storage) SaveLastSync(ctx context.Context, entityType string, ts time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := ts.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMetadata).Put([]byte(lastSyncPrefix+entityType), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save last sync timestamp: %w", err)
	}

	return nil
}

// DeviceID returns the stable device identifier, generating and persisting
// a new UUID on first use.
func (s *Storage) DeviceID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var id string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)

		stored := bucket.Get(keyDeviceID)
		if stored != nil {
			id = string(stored)
			return nil
		}

		id = uuid.New().String()
		if err := bucket.Put(keyDeviceID, []byte(id)); err != nil {
			return fmt.Errorf("failed to persist device id: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}
