package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/internal/storage"
)

// Save stores or updates a syncable record keyed by its ID
func (s *Storage) Save(ctx context.Context, record *models.SyncableRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := s.marshalRecord(record)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if err := bucket.Put([]byte(record.ID), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// SaveBatch persists all records in one transaction: either every record of
// the batch commits or none does.
func (s *Storage) SaveBatch(ctx context.Context, records []*models.SyncableRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if len(records) == 0 {
		return nil
	}

	// Marshal outside the update transaction to keep it short
	encoded := make(map[string][]byte, len(records))
	for _, record := range records {
		data, err := s.marshalRecord(record)
		if err != nil {
			return err
		}
		encoded[record.ID] = data
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		for id, data := range encoded {
			if err := bucket.Put([]byte(id), data); err != nil {
				return fmt.Errorf("failed to save record %s: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("batch transaction failed: %w", err)
	}

	return nil
}

// Get retrieves a record by ID
func (s *Storage) Get(ctx context.Context, id string) (*models.SyncableRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var record *models.SyncableRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		var err error
		record, err = s.unmarshalRecord(data)
		return err
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Delete removes a record. Deleting a missing record is a no-op.
func (s *Storage) Delete(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecords).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// GetPending returns records of the entity type awaiting upload
// (status pending or failed)
func (s *Storage) GetPending(ctx context.Context, entityType string) ([]*models.SyncableRecord, error) {
	return s.scanRecords(func(record *models.SyncableRecord) bool {
		if record.EntityType != entityType {
			return false
		}
		return record.SyncStatus == models.SyncStatusPending || record.SyncStatus == models.SyncStatusFailed
	})
}

// QueryUpdatedSince returns records of the entity type updated after the timestamp
func (s *Storage) QueryUpdatedSince(ctx context.Context, entityType string, since time.Time) ([]*models.SyncableRecord, error) {
	return s.scanRecords(func(record *models.SyncableRecord) bool {
		return record.EntityType == entityType && record.UpdatedAt.After(since)
	})
}

// SetStatus updates the sync status of a stored record
func (s *Storage) SetStatus(ctx context.Context, id string, status models.SyncStatus) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		record, err := s.unmarshalRecord(data)
		if err != nil {
			return err
		}

		record.SyncStatus = status

		updated, err := s.marshalRecord(record)
		if err != nil {
			return err
		}

		if err := bucket.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// scanRecords iterates the records bucket and collects matching records
func (s *Storage) scanRecords(match func(*models.SyncableRecord) bool) ([]*models.SyncableRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.SyncableRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecords).ForEach(func(k, v []byte) error {
			record, err := s.unmarshalRecord(v)
			if err != nil {
				return err
			}
			if match(record) {
				records = append(records, record)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan records: %w", err)
	}

	return records, nil
}

// marshalRecord serializes a record, sealing the payload when at-rest
// encryption is enabled. The stored copy is independent of the caller's.
func (s *Storage) marshalRecord(record *models.SyncableRecord) ([]byte, error) {
	stored := record.Clone()

	sealed, err := s.sealPayload(stored.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to seal payload: %w", err)
	}
	stored.Payload = sealed

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return data, nil
}

func (s *Storage) unmarshalRecord(data []byte) (*models.SyncableRecord, error) {
	record := &models.SyncableRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	payload, err := s.openPayload(record.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to open payload: %w", err)
	}
	record.Payload = payload

	return record, nil
}
