package models

import "time"

// SyncType classifies the direction of a sync pass.
type SyncType string

const (
	SyncTypeUpload        SyncType = "upload"
	SyncTypeDownload      SyncType = "download"
	SyncTypeBidirectional SyncType = "bidirectional"
)

// LogStatus is the outcome recorded for a sync pass.
type LogStatus string

const (
	LogStatusSuccess LogStatus = "success"
	LogStatusFailed  LogStatus = "failed"
)

// SyncLogEntry is one append-only audit record of a sync attempt.
// Entries are never mutated or deleted by the engine; retention is an
// external concern.
type SyncLogEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	DeviceID     string    `json:"device_id"`
	SyncType     SyncType  `json:"sync_type"`
	Status       LogStatus `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	RecordCount  int       `json:"record_count"`
}

// LogFilter narrows a sync log query. Zero values mean "no constraint".
type LogFilter struct {
	StartTime time.Time
	EndTime   time.Time
	DeviceID  string
	SyncType  SyncType
	Status    LogStatus
}
