package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvoronin/calcsync/internal/auth"
	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/internal/syncerr"
	"github.com/nvoronin/calcsync/pkg/api"
)

func testRecord() *models.SyncableRecord {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return &models.SyncableRecord{
		ID:         "rec-1",
		OwnerID:    "user-1",
		DeviceID:   "device-1",
		EntityType: models.EntityCalculation,
		SyncStatus: models.SyncStatusPending,
		Payload:    []byte(`{"inputs":{"span":12.5}}`),
		CreatedAt:  now.Add(-time.Hour),
		UpdatedAt:  now,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL, auth.NewStaticTokenSource("test-token"))
	return client, srv
}

func TestHTTPClient_FetchRecord(t *testing.T) {
	record := testRecord()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sync/calculations/records/rec-1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, json.NewEncoder(w).Encode(toWire(record)))
	})

	got, err := client.FetchRecord(context.Background(), models.EntityCalculation, "rec-1")
	require.NoError(t, err)

	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.Payload, got.Payload)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	assert.True(t, got.UpdatedAt.Equal(record.UpdatedAt))
}

func TestHTTPClient_FetchRecord_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "not_found", Message: "no such record"})
	})

	got, err := client.FetchRecord(context.Background(), models.EntityCalculation, "missing")
	require.ErrorIs(t, err, ErrRecordNotFound)
	assert.Nil(t, got)
}

func TestHTTPClient_UpsertRecord(t *testing.T) {
	record := testRecord()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sync/calculations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Records, 1)
		assert.Equal(t, record.ID, req.Records[0].ID)
		assert.Equal(t, record.DeviceID, req.DeviceID)

		require.NoError(t, json.NewEncoder(w).Encode(api.SyncResponse{Success: true}))
	})

	err := client.UpsertRecord(context.Background(), models.EntityCalculation, record)
	require.NoError(t, err)
}

func TestHTTPClient_UpsertRecord_ServerRejects(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(api.SyncResponse{Success: false}))
	})

	err := client.UpsertRecord(context.Background(), models.EntityCalculation, testRecord())
	require.Error(t, err)
	assert.Equal(t, syncerr.KindServer, syncerr.KindOf(err))
}

func TestHTTPClient_DeleteRecord_MissingIsNoop(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.DeleteRecord(context.Background(), models.EntityCalculation, "gone")
	require.NoError(t, err)
}

func TestHTTPClient_FetchUpdatedSince(t *testing.T) {
	record := testRecord()
	serverTime := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	since := serverTime.Add(-24 * time.Hour)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sync/calculations", r.URL.Path)

		var req api.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Empty(t, req.Records)
		assert.True(t, req.LastSyncTime.Equal(since))
		assert.Equal(t, "device-1", req.DeviceID)

		resp := api.SyncResponse{
			Success:         true,
			ServerTimestamp: serverTime,
			Data:            []api.SyncRecord{toWire(record)},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	records, ts, err := client.FetchUpdatedSince(context.Background(), models.EntityCalculation, "device-1", since)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
	assert.True(t, ts.Equal(serverTime))
}

func TestHTTPClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantKind   syncerr.Kind
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, wantKind: syncerr.KindAuth},
		{name: "forbidden", statusCode: http.StatusForbidden, wantKind: syncerr.KindAuth},
		{name: "conflict", statusCode: http.StatusConflict, wantKind: syncerr.KindConflict},
		{name: "bad request", statusCode: http.StatusBadRequest, wantKind: syncerr.KindValidation},
		{name: "internal error", statusCode: http.StatusInternalServerError, wantKind: syncerr.KindServer},
		{name: "bad gateway", statusCode: http.StatusBadGateway, wantKind: syncerr.KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "boom"})
			})

			err := client.UpsertRecord(context.Background(), models.EntityCalculation, testRecord())
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, syncerr.KindOf(err))
		})
	}
}

func TestHTTPClient_TransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse connections

	client := NewHTTPClient(srv.URL, auth.NewStaticTokenSource("test-token"))

	err := client.UpsertRecord(context.Background(), models.EntityCalculation, testRecord())
	require.Error(t, err)
	assert.Equal(t, syncerr.KindNetwork, syncerr.KindOf(err))
	assert.True(t, syncerr.Retryable(err))
}

func TestHTTPClient_SyncBatch(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/batch", r.URL.Path)

		var req api.BatchSyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Contains(t, req.Entities, models.EntityCalculation)

		resp := api.BatchSyncResponse{
			Success: true,
			Aggregate: api.SyncStatistics{
				UploadedCount: 2,
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	resp, err := client.SyncBatch(context.Background(), api.BatchSyncRequest{
		DeviceID: "device-1",
		Entities: map[string][]api.SyncRecord{
			models.EntityCalculation: {toWire(testRecord())},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Aggregate.UploadedCount)
}

func TestHTTPClient_ResolveConflict(t *testing.T) {
	record := testRecord()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/resolve-conflicts", r.URL.Path)

		var req api.ResolveConflictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "client_wins", req.Resolution)

		wire := toWire(record)
		resp := api.ResolveConflictResponse{Success: true, ResolvedData: &wire}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	wire := toWire(record)
	resp, err := client.ResolveConflict(context.Background(), api.ResolveConflictRequest{
		RecordID:   record.ID,
		RecordType: models.EntityCalculation,
		Resolution: "client_wins",
		ClientData: &wire,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ResolvedData)
	assert.Equal(t, record.ID, resp.ResolvedData.ID)
}

func TestHTTPClient_FetchLogs(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync/logs", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "device-1", q.Get("device_id"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("page_size"))
		assert.Equal(t, "upload", q.Get("sync_type"))
		assert.NotEmpty(t, q.Get("start_time"))

		resp := api.LogsResponse{
			Entries:  []api.LogEntry{{ID: "log-1", DeviceID: "device-1"}},
			Page:     2,
			PageSize: 25,
			Total:    51,
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	filter := models.LogFilter{
		DeviceID:  "device-1",
		StartTime: start,
		SyncType:  models.SyncTypeUpload,
	}
	resp, err := client.FetchLogs(context.Background(), filter, 2, 25)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, 51, resp.Total)
}

func TestHTTPClient_EmptyTokenFailsBeforeRequest(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	client.tokens = auth.NewStaticTokenSource("")

	err := client.UpsertRecord(context.Background(), models.EntityCalculation, testRecord())
	require.Error(t, err)
	assert.Equal(t, syncerr.KindAuth, syncerr.KindOf(err))
	assert.False(t, called)
}
