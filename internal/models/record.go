package models

import "time"

// SyncStatus is the lifecycle tag on a record.
type SyncStatus string

const (
	SyncStatusPending  SyncStatus = "pending"
	SyncStatusSyncing  SyncStatus = "syncing"
	SyncStatusSynced   SyncStatus = "synced"
	SyncStatusFailed   SyncStatus = "failed"
	SyncStatusConflict SyncStatus = "conflict"
)

// Entity type constants. A calculation record and a parameter set are
// structurally identical for sync purposes; the type only selects the
// remote collection and the local bucket.
const (
	EntityCalculation  = "calculations"
	EntityParameterSet = "parameter_sets"
)

// EntityTypes lists every known entity type in the stable order batch
// operations iterate them.
var EntityTypes = []string{EntityCalculation, EntityParameterSet}

// SyncableRecord represents one calculation record or one parameter set.
// Payload is an opaque serialized blob owned by the caller; the sync engine
// never deserializes or interprets it.
type SyncableRecord struct {
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ID         string     `json:"id"`        // globally unique, caller-generated
	OwnerID    string     `json:"owner_id"`  // user the record belongs to
	DeviceID   string     `json:"device_id"` // origin device, audit only
	EntityType string     `json:"entity_type"`
	SyncStatus SyncStatus `json:"sync_status"`
	Payload    []byte     `json:"payload"`
}

// IsNewerThan reports whether the record was updated after other.
// UpdatedAt is monotonically non-decreasing for writes from the same device;
// for foreign devices it is trusted as-is.
func (r *SyncableRecord) IsNewerThan(other *SyncableRecord) bool {
	return r.UpdatedAt.After(other.UpdatedAt)
}

// Clone returns a deep copy of the record.
func (r *SyncableRecord) Clone() *SyncableRecord {
	payload := make([]byte, len(r.Payload))
	copy(payload, r.Payload)

	return &SyncableRecord{
		ID:         r.ID,
		OwnerID:    r.OwnerID,
		DeviceID:   r.DeviceID,
		EntityType: r.EntityType,
		SyncStatus: r.SyncStatus,
		Payload:    payload,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ConflictPair is a (local, remote) pair of records sharing the same ID.
// It exists only transiently during resolution and is never persisted.
type ConflictPair struct {
	Local  *SyncableRecord
	Remote *SyncableRecord
}
