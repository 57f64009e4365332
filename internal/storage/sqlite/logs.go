package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nvoronin/calcsync/internal/models"
)

// Append writes one sync log entry. The log is append-only: no update or
// delete statements exist in this package.
func (s *Storage) Append(ctx context.Context, entry *models.SyncLogEntry) error {
	query := `
		INSERT INTO sync_log (
			id, user_id, device_id, sync_type,
			record_count, status, error_message, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.DeviceID,
		string(entry.SyncType),
		entry.RecordCount,
		string(entry.Status),
		entry.ErrorMessage,
		entry.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert log entry: %w", err)
	}

	return nil
}

// Query returns entries matching the filter ordered by timestamp descending,
// paginated. Page numbering starts at 1. The second value is the total match
// count across all pages.
func (s *Storage) Query(ctx context.Context, filter models.LogFilter, page, pageSize int) ([]*models.SyncLogEntry, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	where, args := buildWhere(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM sync_log" + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count log entries: %w", err)
	}

	query := `
		SELECT id, user_id, device_id, sync_type,
		       record_count, status, error_message, timestamp
		FROM sync_log` + where + `
		ORDER BY timestamp DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []*models.SyncLogEntry
	for rows.Next() {
		entry := &models.SyncLogEntry{}
		var syncType, status string
		var ts int64

		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.DeviceID,
			&syncType,
			&entry.RecordCount,
			&status,
			&entry.ErrorMessage,
			&ts,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan log entry: %w", err)
		}

		entry.SyncType = models.SyncType(syncType)
		entry.Status = models.LogStatus(status)
		entry.Timestamp = time.UnixMilli(ts).UTC()
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate log entries: %w", err)
	}

	return entries, total, nil
}

// buildWhere assembles the WHERE clause from the non-zero filter fields
func buildWhere(filter models.LogFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.DeviceID != "" {
		conds = append(conds, "device_id = ?")
		args = append(args, filter.DeviceID)
	}
	if filter.SyncType != "" {
		conds = append(conds, "sync_type = ?")
		args = append(args, string(filter.SyncType))
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(filter.Status))
	}
	if !filter.StartTime.IsZero() {
		conds = append(conds, "timestamp >= ?")
		args = append(args, filter.StartTime.UnixMilli())
	}
	if !filter.EndTime.IsZero() {
		conds = append(conds, "timestamp <= ?")
		args = append(args, filter.EndTime.UnixMilli())
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
