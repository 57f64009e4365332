package remote

import (
	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/pkg/api"
)

// toWire converts a record to its wire form. SyncStatus is local
// bookkeeping and does not travel.
func toWire(record *models.SyncableRecord) api.SyncRecord {
	return api.SyncRecord{
		ID:         record.ID,
		OwnerID:    record.OwnerID,
		DeviceID:   record.DeviceID,
		EntityType: record.EntityType,
		Payload:    record.Payload,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

// fromWire converts a wire record back to the model form. Records arriving
// from the server are by definition synced.
func fromWire(record api.SyncRecord) *models.SyncableRecord {
	return &models.SyncableRecord{
		ID:         record.ID,
		OwnerID:    record.OwnerID,
		DeviceID:   record.DeviceID,
		EntityType: record.EntityType,
		SyncStatus: models.SyncStatusSynced,
		Payload:    record.Payload,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}
