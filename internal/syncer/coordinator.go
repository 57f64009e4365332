// Package syncer implements the sync coordinator: the upload/download pass
// over one entity type, batch passes over several, and replay of queued
// offline operations.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/internal/remote"
	"github.com/nvoronin/calcsync/internal/storage"
	"github.com/nvoronin/calcsync/internal/syncerr"
)

// ErrSyncInProgress is returned when a pass for the same (user, entityType)
// pair is already running. The caller retries after the current pass ends.
var ErrSyncInProgress = errors.New("sync already in progress for this user and entity type")

//go:generate go tool moq -out coordinator_mock.go . Enqueuer PassLog

// Enqueuer defers operations that failed transiently so the offline queue
// replays them later. The offline queue is the production implementation.
type Enqueuer interface {
	Enqueue(ctx context.Context, item *models.OfflineQueueItem) error
}

// PassLog records the outcome of sync passes.
type PassLog interface {
	Append(ctx context.Context, entry *models.SyncLogEntry) error
}

// SyncResult summarizes one pass over a single entity type.
type SyncResult struct {
	Records         []*models.SyncableRecord
	Conflicts       []models.ConflictPair
	EntityType      string
	UploadedCount   int
	DownloadedCount int
	ConflictCount   int
	FailedCount     int
	DurationMs      int64
	Success         bool
}

// BatchResult aggregates per-entity-type passes. Success holds only when
// every individual pass succeeded.
type BatchResult struct {
	PerType    map[string]*SyncResult
	Aggregate  SyncResult
	DurationMs int64
	Success    bool
}

// Coordinator owns the lifecycle of in-flight sync passes. At most one
// pass per (user, entityType) runs at a time.
type Coordinator struct {
	client   remote.Client
	store    storage.LocalStore
	metadata storage.MetadataStore
	queue    Enqueuer
	passLog  PassLog
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New creates a coordinator. queue may be nil at construction time because
// the offline queue replays through the coordinator; wire it with SetQueue
// before the first pass, or transient failures are only logged.
func New(client remote.Client, store storage.LocalStore, metadata storage.MetadataStore, queue Enqueuer, passLog PassLog, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		client:   client,
		store:    store,
		metadata: metadata,
		queue:    queue,
		passLog:  passLog,
		logger:   logger,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
}

// SetQueue wires the offline queue after construction. The queue and the
// coordinator reference each other, so one side has to be attached late.
func (c *Coordinator) SetQueue(queue Enqueuer) {
	c.queue = queue
}

// PassOption adjusts how a single pass handles failures.
type PassOption func(*passConfig)

type passConfig struct {
	foreground bool
}

// Foreground marks a user-triggered pass. Transient upload failures are
// surfaced in the result instead of being queued for background replay;
// the user decides whether to retry.
func Foreground() PassOption {
	return func(cfg *passConfig) {
		cfg.foreground = true
	}
}

// SyncEntity runs one upload-then-download pass for the entity type.
// localChanges are uploaded record by record; a failure on one record never
// aborts the rest. The download phase then fetches remote records updated
// after lastSync; a zero lastSync falls back to the stored watermark.
//
// A concurrent call for the same (userID, entityType) returns
// ErrSyncInProgress.
func (c *Coordinator) SyncEntity(ctx context.Context, userID, entityType string, localChanges []*models.SyncableRecord, lastSync time.Time, opts ...PassOption) (*SyncResult, error) {
	if !c.tryAcquire(userID, entityType) {
		return nil, ErrSyncInProgress
	}
	defer c.release(userID, entityType)

	var cfg passConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	started := c.now()
	result := &SyncResult{EntityType: entityType}

	deviceID, err := c.metadata.DeviceID(ctx)
	if err != nil {
		return nil, syncerr.Wrap(syncerr.KindStorage, "failed to load device id", err)
	}

	if lastSync.IsZero() {
		lastSync, err = c.metadata.GetLastSync(ctx, entityType)
		if err != nil {
			return nil, syncerr.Wrap(syncerr.KindStorage, "failed to load sync watermark", err)
		}
	}

	// Upload completes before download begins: a caller's own new records
	// are never immediately re-downloaded as if foreign.
	c.uploadPhase(ctx, entityType, localChanges, result, cfg)

	downloadErr := c.downloadPhase(ctx, entityType, deviceID, lastSync, result)

	result.Success = downloadErr == nil && result.FailedCount == 0
	result.DurationMs = c.now().Sub(started).Milliseconds()

	c.logPass(ctx, userID, deviceID, result, downloadErr)

	c.logger.Info("sync pass finished",
		"entity_type", entityType,
		"uploaded", result.UploadedCount,
		"downloaded", result.DownloadedCount,
		"conflicts", result.ConflictCount,
		"failed", result.FailedCount,
		"duration_ms", result.DurationMs,
		"success", result.Success)

	if downloadErr != nil {
		return result, downloadErr
	}
	return result, nil
}

// SyncBatch runs one pass per entity type and aggregates statistics. The
// batch succeeds only if every pass succeeded.
func (c *Coordinator) SyncBatch(ctx context.Context, userID string, changes map[string][]*models.SyncableRecord, lastSync time.Time, opts ...PassOption) (*BatchResult, error) {
	started := c.now()
	batch := &BatchResult{
		PerType: make(map[string]*SyncResult, len(changes)),
		Success: true,
	}

	for _, entityType := range models.EntityTypes {
		localChanges, ok := changes[entityType]
		if !ok {
			continue
		}

		result, err := c.SyncEntity(ctx, userID, entityType, localChanges, lastSync, opts...)
		if err != nil && result == nil {
			result = &SyncResult{EntityType: entityType}
			c.logger.Error("entity pass failed outright",
				"entity_type", entityType, "error", err)
		}

		batch.PerType[entityType] = result
		batch.Aggregate.UploadedCount += result.UploadedCount
		batch.Aggregate.DownloadedCount += result.DownloadedCount
		batch.Aggregate.ConflictCount += result.ConflictCount
		batch.Aggregate.FailedCount += result.FailedCount
		if !result.Success {
			batch.Success = false
		}
	}

	batch.DurationMs = c.now().Sub(started).Milliseconds()
	return batch, nil
}

// uploadPhase pushes each local change to the remote service using
// per-record last-write-wins against the remote counterpart.
func (c *Coordinator) uploadPhase(ctx context.Context, entityType string, localChanges []*models.SyncableRecord, result *SyncResult, cfg passConfig) {
	for _, local := range localChanges {
		if err := validateForUpload(entityType, local); err != nil {
			result.FailedCount++
			c.logger.Warn("record rejected before upload", "error", err)
			continue
		}

		if err := c.uploadRecord(ctx, entityType, local, result); err != nil {
			result.FailedCount++
			c.handleUploadFailure(ctx, entityType, local, err, cfg)
		}
	}
}

func (c *Coordinator) uploadRecord(ctx context.Context, entityType string, local *models.SyncableRecord, result *SyncResult) error {
	remoteRec, err := c.client.FetchRecord(ctx, entityType, local.ID)
	switch {
	case errors.Is(err, remote.ErrRecordNotFound):
		// no remote counterpart: plain insert
		if err := c.client.UpsertRecord(ctx, entityType, local); err != nil {
			return err
		}
		// the record counts as uploaded only once local bookkeeping landed,
		// so a status-write failure never counts it as uploaded and failed
		if err := c.markSynced(ctx, local.ID); err != nil {
			return err
		}
		result.UploadedCount++
		return nil

	case err != nil:
		return err
	}

	switch {
	case local.UpdatedAt.After(remoteRec.UpdatedAt):
		if err := c.client.UpsertRecord(ctx, entityType, local); err != nil {
			return err
		}
		if err := c.markSynced(ctx, local.ID); err != nil {
			return err
		}
		result.UploadedCount++
		return nil

	case local.UpdatedAt.Before(remoteRec.UpdatedAt):
		// remote is newer: neither side is overwritten, the caller decides
		result.ConflictCount++
		result.Conflicts = append(result.Conflicts, models.ConflictPair{
			Local:  local.Clone(),
			Remote: remoteRec,
		})
		if err := c.store.SetStatus(ctx, local.ID, models.SyncStatusConflict); err != nil {
			c.logger.Error("failed to flag local conflict", "id", local.ID, "error", err)
		}
		return nil

	default:
		// identical timestamps: both sides already agree
		return c.markSynced(ctx, local.ID)
	}
}

// downloadPhase fetches remote changes after the watermark, applies the
// non-conflicting ones to the local store in one transaction and advances
// the watermark to the server's timestamp.
func (c *Coordinator) downloadPhase(ctx context.Context, entityType, deviceID string, lastSync time.Time, result *SyncResult) error {
	downloaded, serverTime, err := c.client.FetchUpdatedSince(ctx, entityType, deviceID, lastSync)
	if err != nil {
		return fmt.Errorf("download phase failed: %w", err)
	}

	toApply := make([]*models.SyncableRecord, 0, len(downloaded))
	for _, rec := range downloaded {
		local, err := c.store.Get(ctx, rec.ID)
		switch {
		case errors.Is(err, storage.ErrRecordNotFound):
			toApply = append(toApply, rec)
		case err != nil:
			result.FailedCount++
			c.logger.Error("failed to read local counterpart", "id", rec.ID, "error", err)
			continue
		case rec.UpdatedAt.After(local.UpdatedAt):
			toApply = append(toApply, rec)
		case rec.UpdatedAt.Before(local.UpdatedAt) && local.SyncStatus != models.SyncStatusSynced:
			// the local pending version is newer; keep both sides intact
			result.ConflictCount++
			result.Conflicts = append(result.Conflicts, models.ConflictPair{
				Local:  local,
				Remote: rec,
			})
			continue
		}
		// equal timestamps or stale remote over a synced local: nothing to apply
	}

	if len(toApply) > 0 {
		if err := c.store.SaveBatch(ctx, toApply); err != nil {
			return syncerr.Wrap(syncerr.KindStorage, "failed to apply downloaded records", err)
		}
	}

	result.Records = downloaded
	result.DownloadedCount = len(downloaded)

	if !serverTime.IsZero() {
		if err := c.metadata.SaveLastSync(ctx, entityType, serverTime); err != nil {
			c.logger.Error("failed to advance sync watermark",
				"entity_type", entityType, "error", err)
		}
	}

	return nil
}

// handleUploadFailure enqueues the record for offline replay when the
// failure is transient. Auth and validation failures are never requeued,
// and foreground passes queue nothing: their failures surface to the user.
func (c *Coordinator) handleUploadFailure(ctx context.Context, entityType string, local *models.SyncableRecord, err error, cfg passConfig) {
	c.logger.Warn("record upload failed",
		"id", local.ID,
		"entity_type", entityType,
		"kind", syncerr.KindOf(err),
		"error", err)

	if setErr := c.store.SetStatus(ctx, local.ID, models.SyncStatusFailed); setErr != nil {
		c.logger.Error("failed to mark record failed", "id", local.ID, "error", setErr)
	}

	if cfg.foreground || !syncerr.Retryable(err) || c.queue == nil {
		return
	}

	op := models.OperationUpdate
	if local.SyncStatus == models.SyncStatusPending && local.CreatedAt.Equal(local.UpdatedAt) {
		op = models.OperationCreate
	}

	item := &models.OfflineQueueItem{
		OperationType:   op,
		EntityType:      entityType,
		RecordID:        local.ID,
		PayloadSnapshot: append([]byte(nil), local.Payload...),
		LastError:       err.Error(),
	}
	if qErr := c.queue.Enqueue(ctx, item); qErr != nil {
		c.logger.Error("failed to queue record for replay", "id", local.ID, "error", qErr)
	}
}

func (c *Coordinator) markSynced(ctx context.Context, id string) error {
	if err := c.store.SetStatus(ctx, id, models.SyncStatusSynced); err != nil {
		return syncerr.Wrap(syncerr.KindStorage, "failed to mark record synced", err)
	}
	return nil
}

func (c *Coordinator) logPass(ctx context.Context, userID, deviceID string, result *SyncResult, passErr error) {
	entry := &models.SyncLogEntry{
		UserID:      userID,
		DeviceID:    deviceID,
		SyncType:    models.SyncTypeBidirectional,
		Status:      models.LogStatusSuccess,
		RecordCount: result.UploadedCount + result.DownloadedCount,
	}
	if !result.Success {
		entry.Status = models.LogStatusFailed
	}
	if passErr != nil {
		entry.ErrorMessage = passErr.Error()
	}

	if err := c.passLog.Append(ctx, entry); err != nil {
		c.logger.Error("failed to record sync pass", "error", err)
	}
}

func (c *Coordinator) tryAcquire(userID, entityType string) bool {
	key := userID + "/" + entityType

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inFlight[key]; busy {
		return false
	}
	c.inFlight[key] = struct{}{}
	return true
}

func (c *Coordinator) release(userID, entityType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, userID+"/"+entityType)
}

func validateForUpload(entityType string, record *models.SyncableRecord) error {
	switch {
	case record == nil:
		return syncerr.New(syncerr.KindValidation, "nil record")
	case record.ID == "":
		return syncerr.New(syncerr.KindValidation, "record has no id")
	case record.EntityType != entityType:
		return syncerr.New(syncerr.KindValidation,
			fmt.Sprintf("record %s belongs to entity type %q, not %q", record.ID, record.EntityType, entityType))
	case record.UpdatedAt.IsZero():
		return syncerr.New(syncerr.KindValidation, fmt.Sprintf("record %s has no update timestamp", record.ID))
	}
	return nil
}
