// Package api contains the wire types of the remote sync contract. The
// engine consumes this contract, it does not own the server implementing it.
package api

import "time"

// SyncRecord is the wire form of one syncable record. Payload is opaque to
// both sides of the sync protocol; only the caller knows its schema.
type SyncRecord struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	DeviceID   string    `json:"device_id"`
	EntityType string    `json:"entity_type"`
	Payload    []byte    `json:"payload"`
}

// SyncRequest is the body of POST /sync/{entityType}.
type SyncRequest struct {
	LastSyncTime time.Time    `json:"last_sync_time"`
	DeviceID     string       `json:"device_id"`
	Records      []SyncRecord `json:"records"`
}

// SyncStatistics summarizes one sync pass.
type SyncStatistics struct {
	UploadedCount   int `json:"uploaded_count"`
	DownloadedCount int `json:"downloaded_count"`
	ConflictCount   int `json:"conflict_count"`
	FailedCount     int `json:"failed_count"`
}

// SyncResponse is the body returned by POST /sync/{entityType}.
type SyncResponse struct {
	ServerTimestamp time.Time      `json:"server_timestamp"`
	Data            []SyncRecord   `json:"data"`
	Statistics      SyncStatistics `json:"statistics"`
	Success         bool           `json:"success"`
}

// BatchSyncRequest is the body of POST /sync/batch: one SyncRequest worth of
// records per entity type.
type BatchSyncRequest struct {
	LastSyncTime time.Time               `json:"last_sync_time"`
	DeviceID     string                  `json:"device_id"`
	Entities     map[string][]SyncRecord `json:"entities"`
}

// BatchSyncResponse carries per-type and aggregate statistics.
type BatchSyncResponse struct {
	ServerTimestamp time.Time                 `json:"server_timestamp"`
	PerType         map[string]SyncStatistics `json:"per_type"`
	Data            map[string][]SyncRecord   `json:"data"`
	Aggregate       SyncStatistics            `json:"aggregate"`
	Success         bool                      `json:"success"`
}

// ResolveConflictRequest is the body of POST /sync/resolve-conflicts.
// ClientData is set only when the resolution keeps the client side.
type ResolveConflictRequest struct {
	RecordID   string      `json:"record_id"`
	RecordType string      `json:"record_type"`
	Resolution string      `json:"resolution"`
	DeviceID   string      `json:"device_id"`
	ClientData *SyncRecord `json:"client_data,omitempty"`
}

// ResolveConflictResponse is returned by POST /sync/resolve-conflicts.
type ResolveConflictResponse struct {
	ServerTimestamp time.Time   `json:"server_timestamp"`
	ResolvedData    *SyncRecord `json:"resolved_data,omitempty"`
	Success         bool        `json:"success"`
}

// LogEntry is the wire form of one sync audit record.
type LogEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	DeviceID     string    `json:"device_id"`
	SyncType     string    `json:"sync_type"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	RecordCount  int       `json:"record_count"`
}

// LogsResponse is the paginated body of GET /sync/logs.
type LogsResponse struct {
	Entries  []LogEntry `json:"entries"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Total    int        `json:"total"`
}

// ErrorResponse is the error body returned by the remote service.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
