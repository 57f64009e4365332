package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nvoronin/calcsync/internal/auth"
	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/internal/syncerr"
	"github.com/nvoronin/calcsync/pkg/api"
)

// defaultTimeout bounds every remote call
const defaultTimeout = 30 * time.Second

// HTTPClient implements Client over the HTTP sync contract.
type HTTPClient struct {
	httpClient *http.Client
	tokens     auth.TokenSource
	baseURL    string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a new HTTP sync client.
func NewHTTPClient(baseURL string, tokens auth.TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// FetchRecord returns the remote counterpart of a record by id.
func (c *HTTPClient) FetchRecord(ctx context.Context, entityType, recordID string) (*models.SyncableRecord, error) {
	var record api.SyncRecord
	path := fmt.Sprintf("/sync/%s/records/%s", entityType, recordID)

	err := c.doRequest(ctx, http.MethodGet, path, nil, &record)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("fetch record failed: %w", err)
	}

	return fromWire(record), nil
}

// UpsertRecord inserts or overwrites one record remotely. The server upserts
// by id, so repeating the call after an unacknowledged success is a no-op.
func (c *HTTPClient) UpsertRecord(ctx context.Context, entityType string, record *models.SyncableRecord) error {
	req := api.SyncRequest{
		DeviceID: record.DeviceID,
		Records:  []api.SyncRecord{toWire(record)},
	}

	var resp api.SyncResponse
	if err := c.doRequest(ctx, http.MethodPost, "/sync/"+entityType, req, &resp); err != nil {
		return fmt.Errorf("upsert record failed: %w", err)
	}

	if !resp.Success {
		return syncerr.New(syncerr.KindServer, "server rejected the upload")
	}

	return nil
}

// DeleteRecord removes a record remotely.
func (c *HTTPClient) DeleteRecord(ctx context.Context, entityType, recordID string) error {
	path := fmt.Sprintf("/sync/%s/records/%s", entityType, recordID)

	err := c.doRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete record failed: %w", err)
	}

	return nil
}

// FetchUpdatedSince returns the records of the entity type changed after the
// watermark. It is a download-only sync round: an empty record set goes up,
// the server's changes come down.
func (c *HTTPClient) FetchUpdatedSince(ctx context.Context, entityType, deviceID string, since time.Time) ([]*models.SyncableRecord, time.Time, error) {
	req := api.SyncRequest{
		DeviceID:     deviceID,
		LastSyncTime: since,
	}

	var resp api.SyncResponse
	if err := c.doRequest(ctx, http.MethodPost, "/sync/"+entityType, req, &resp); err != nil {
		return nil, time.Time{}, fmt.Errorf("fetch updates failed: %w", err)
	}

	records := make([]*models.SyncableRecord, 0, len(resp.Data))
	for _, wire := range resp.Data {
		records = append(records, fromWire(wire))
	}

	return records, resp.ServerTimestamp, nil
}

// SyncBatch runs one server-side sync round across multiple entity types.
func (c *HTTPClient) SyncBatch(ctx context.Context, req api.BatchSyncRequest) (*api.BatchSyncResponse, error) {
	var resp api.BatchSyncResponse
	if err := c.doRequest(ctx, http.MethodPost, "/sync/batch", req, &resp); err != nil {
		return nil, fmt.Errorf("batch sync failed: %w", err)
	}
	return &resp, nil
}

// ResolveConflict reports an explicit conflict resolution to the server.
func (c *HTTPClient) ResolveConflict(ctx context.Context, req api.ResolveConflictRequest) (*api.ResolveConflictResponse, error) {
	var resp api.ResolveConflictResponse
	if err := c.doRequest(ctx, http.MethodPost, "/sync/resolve-conflicts", req, &resp); err != nil {
		return nil, fmt.Errorf("resolve conflict failed: %w", err)
	}
	return &resp, nil
}

// FetchLogs queries the server-side sync audit trail.
func (c *HTTPClient) FetchLogs(ctx context.Context, filter models.LogFilter, page, pageSize int) (*api.LogsResponse, error) {
	query := url.Values{}
	if filter.DeviceID != "" {
		query.Set("device_id", filter.DeviceID)
	}
	if !filter.StartTime.IsZero() {
		query.Set("start_time", strconv.FormatInt(filter.StartTime.UnixMilli(), 10))
	}
	if !filter.EndTime.IsZero() {
		query.Set("end_time", strconv.FormatInt(filter.EndTime.UnixMilli(), 10))
	}
	if filter.SyncType != "" {
		query.Set("sync_type", string(filter.SyncType))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var resp api.LogsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/sync/logs?"+query.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch logs failed: %w", err)
	}
	return &resp, nil
}

// doRequest performs one HTTP round-trip with the bearer credential attached
// and classifies failures into the engine's error taxonomy.
func (c *HTTPClient) doRequest(ctx context.Context, method, path string, body, result any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return syncerr.Wrap(syncerr.KindValidation, "failed to marshal request body", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return syncerr.Wrap(syncerr.KindValidation, "failed to create request", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return syncerr.Wrap(syncerr.KindNetwork, "request failed", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return syncerr.Wrap(syncerr.KindNetwork, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("status %d", resp.StatusCode)
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			message = fmt.Sprintf("%s (status %d)", errResp.Message, resp.StatusCode)
		}
		if resp.StatusCode == http.StatusNotFound {
			return syncerr.Wrap(syncerr.KindValidation, message, errStatusNotFound)
		}
		return syncerr.FromStatusCode(resp.StatusCode, message)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return syncerr.Wrap(syncerr.KindServer, "failed to decode response", err)
		}
	}

	return nil
}

// errStatusNotFound tags 404 responses so callers can map them to
// ErrRecordNotFound without a dedicated error kind.
var errStatusNotFound = errors.New("resource not found")

func isNotFound(err error) bool {
	return errors.Is(err, errStatusNotFound)
}
