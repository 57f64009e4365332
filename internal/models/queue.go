package models

import "time"

// OperationType describes the deferred operation an OfflineQueueItem replays.
type OperationType string

const (
	OperationCreate OperationType = "create"
	OperationUpdate OperationType = "update"
	OperationDelete OperationType = "delete"
	OperationSync   OperationType = "sync"
)

// OfflineQueueItem is a durable record of one operation that could not
// complete immediately (no connectivity, or a transient remote failure).
// It is created on first failure, mutated on each failed retry and removed
// on success or abandonment.
type OfflineQueueItem struct {
	CreatedAt       time.Time     `json:"created_at"`
	LastRetryAt     time.Time     `json:"last_retry_at"`
	ID              string        `json:"id"` // generated UUID
	OperationType   OperationType `json:"operation_type"`
	EntityType      string        `json:"entity_type"`
	RecordID        string        `json:"record_id"`
	LastError       string        `json:"last_error"`
	PayloadSnapshot []byte        `json:"payload_snapshot"` // opaque, as handed in
	RetryCount      int           `json:"retry_count"`
}

// Clone returns a deep copy of the queue item.
func (i *OfflineQueueItem) Clone() *OfflineQueueItem {
	snapshot := make([]byte, len(i.PayloadSnapshot))
	copy(snapshot, i.PayloadSnapshot)

	c := *i
	c.PayloadSnapshot = snapshot
	return &c
}
