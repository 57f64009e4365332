package syncer

import (
	"context"
	"errors"
	"fmt"

	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/internal/remote"
	"github.com/nvoronin/calcsync/internal/storage"
	"github.com/nvoronin/calcsync/internal/syncerr"
)

// Replay re-executes one queued offline operation. It satisfies the offline
// queue's replayer contract: the remote service upserts by record id, so a
// repeated replay after an unacknowledged success is harmless.
func (c *Coordinator) Replay(ctx context.Context, item *models.OfflineQueueItem) error {
	switch item.OperationType {
	case models.OperationCreate, models.OperationUpdate:
		return c.replayUpsert(ctx, item)
	case models.OperationDelete:
		return c.replayDelete(ctx, item)
	case models.OperationSync:
		return c.replayPendingUploads(ctx, item.EntityType)
	default:
		return syncerr.New(syncerr.KindValidation,
			fmt.Sprintf("unknown queued operation %q", item.OperationType))
	}
}

// replayUpsert pushes the current local version of the record, not the
// snapshot: the record may have changed again while queued, and the newest
// local state is what last-write-wins should carry.
func (c *Coordinator) replayUpsert(ctx context.Context, item *models.OfflineQueueItem) error {
	record, err := c.store.Get(ctx, item.RecordID)
	if errors.Is(err, storage.ErrRecordNotFound) {
		// deleted locally while queued, nothing left to push
		c.logger.Debug("queued record no longer exists locally", "record_id", item.RecordID)
		return nil
	}
	if err != nil {
		return syncerr.Wrap(syncerr.KindStorage, "failed to load queued record", err)
	}

	if err := c.client.UpsertRecord(ctx, item.EntityType, record); err != nil {
		return err
	}

	if err := c.store.SetStatus(ctx, record.ID, models.SyncStatusSynced); err != nil {
		c.logger.Error("failed to mark replayed record synced",
			"record_id", record.ID, "error", err)
	}

	return nil
}

func (c *Coordinator) replayDelete(ctx context.Context, item *models.OfflineQueueItem) error {
	err := c.client.DeleteRecord(ctx, item.EntityType, item.RecordID)
	if err != nil && !errors.Is(err, remote.ErrRecordNotFound) {
		return err
	}
	return nil
}

// replayPendingUploads pushes every pending record of the entity type. Used
// for queued whole-pass requests recorded while offline.
func (c *Coordinator) replayPendingUploads(ctx context.Context, entityType string) error {
	pending, err := c.store.GetPending(ctx, entityType)
	if err != nil {
		return syncerr.Wrap(syncerr.KindStorage, "failed to load pending records", err)
	}

	for _, record := range pending {
		if err := c.client.UpsertRecord(ctx, entityType, record); err != nil {
			return err
		}
		if err := c.store.SetStatus(ctx, record.ID, models.SyncStatusSynced); err != nil {
			c.logger.Error("failed to mark record synced",
				"record_id", record.ID, "error", err)
		}
	}

	return nil
}
