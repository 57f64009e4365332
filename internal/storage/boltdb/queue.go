package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/internal/storage"
)

// PutItem inserts or updates a queue item keyed by its ID
func (s *Storage) PutItem(ctx context.Context, item *models.OfflineQueueItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	stored := item.Clone()

	sealed, err := s.sealPayload(stored.PayloadSnapshot)
	if err != nil {
		return fmt.Errorf("failed to seal payload snapshot: %w", err)
	}
	stored.PayloadSnapshot = sealed

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal queue item: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketQueue).Put([]byte(item.ID), data); err != nil {
			return fmt.Errorf("failed to save queue item: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// DeleteItem removes a queue item. Deleting a missing item is a no-op.
func (s *Storage) DeleteItem(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketQueue).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// OldestItems returns up to limit queue items ordered by creation time ascending.
// Queues stay small (bounded by abandonment), so sorting in memory is fine.
func (s *Storage) OldestItems(ctx context.Context, limit int) ([]*models.OfflineQueueItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var items []*models.OfflineQueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketQueue).ForEach(func(k, v []byte) error {
			item := &models.OfflineQueueItem{}
			if err := json.Unmarshal(v, item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}

			snapshot, err := s.openPayload(item.PayloadSnapshot)
			if err != nil {
				return fmt.Errorf("failed to open payload snapshot: %w", err)
			}
			item.PayloadSnapshot = snapshot

			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

// CountItems returns the number of queued items
func (s *Storage) CountItems(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketQueue).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count queue items: %w", err)
	}

	return count, nil
}
