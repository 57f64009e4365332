// Package cli implements the calcsync command surface: foreground sync,
// status inspection, log queries and the long-running background engine.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/nvoronin/calcsync/internal/conflict"
	"github.com/nvoronin/calcsync/internal/models"
	"github.com/nvoronin/calcsync/internal/netmon"
	"github.com/nvoronin/calcsync/internal/queue"
	"github.com/nvoronin/calcsync/internal/remote"
	"github.com/nvoronin/calcsync/internal/storage"
	"github.com/nvoronin/calcsync/internal/syncer"
	"github.com/nvoronin/calcsync/internal/synclog"
	"github.com/nvoronin/calcsync/pkg/api"
)

// App bundles the wired engine components the commands operate on.
type App struct {
	Coordinator *syncer.Coordinator
	Queue       *queue.OfflineQueue
	Monitor     *netmon.Monitor
	Logs        *synclog.Logger
	Remote      remote.Client
	Store       storage.LocalStore
	Metadata    storage.MetadataStore
	Logger      *slog.Logger

	UserID        string
	DrainInterval time.Duration
}

// PrintUsage writes the command summary to stderr.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Usage: calcsync [flags] <command>

Commands:
  sync      Run one foreground sync pass over all entity types
  status    Show connectivity, pending records and queue depth
  resolve   Resolve a flagged conflict with an explicit strategy
  logs      Query the sync audit trail (local, or -remote for the server's)
  run       Run the background sync engine until interrupted
  version   Show version information

Flags:
`)
	fmt.Fprintf(os.Stderr, "  -config string\n\tPath to config file\n")
	fmt.Fprintf(os.Stderr, "  -server string\n\tSync server URL\n")
	fmt.Fprintf(os.Stderr, "  -user string\n\tUser id to sync as\n")
}

// ReadToken returns the bearer credential, preferring the environment over
// an interactive prompt.
func ReadToken() (string, error) {
	if token := os.Getenv("CALCSYNC_TOKEN"); token != "" {
		return token, nil
	}
	return readSecret("Access token: ")
}

// readSecret reads a line from the terminal without echoing it.
func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(secret), nil
}

// RunSync performs one foreground pass over every entity type and prints
// the aggregate outcome.
func (a *App) RunSync(ctx context.Context) error {
	changes := make(map[string][]*models.SyncableRecord, len(models.EntityTypes))
	for _, entityType := range models.EntityTypes {
		pending, err := a.Store.GetPending(ctx, entityType)
		if err != nil {
			return fmt.Errorf("failed to load pending %s: %w", entityType, err)
		}
		changes[entityType] = pending
	}

	// user-triggered: failures surface immediately, nothing is queued
	batch, err := a.Coordinator.SyncBatch(ctx, a.UserID, changes, time.Time{}, syncer.Foreground())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENTITY TYPE\tUPLOADED\tDOWNLOADED\tCONFLICTS\tFAILED")
	for _, entityType := range models.EntityTypes {
		result, ok := batch.PerType[entityType]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", entityType,
			result.UploadedCount, result.DownloadedCount,
			result.ConflictCount, result.FailedCount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, result := range batch.PerType {
		for _, pair := range result.Conflicts {
			fmt.Printf("conflict: %s %s (local %s, remote %s) left unresolved\n",
				result.EntityType, pair.Local.ID,
				pair.Local.UpdatedAt.Format(time.RFC3339),
				pair.Remote.UpdatedAt.Format(time.RFC3339))
		}
	}

	if !batch.Success {
		return fmt.Errorf("sync finished with failures")
	}
	fmt.Printf("sync completed in %dms\n", batch.DurationMs)
	return nil
}

// RunStatus prints connectivity, queue depth and per-type bookkeeping.
func (a *App) RunStatus(ctx context.Context) error {
	state := a.Monitor.State()
	fmt.Printf("Network:  %s (%s)\n", state.Status, state.Type)

	depth, err := a.Queue.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to count queued operations: %w", err)
	}
	fmt.Printf("Queued:   %d operation(s)\n", depth)

	deviceID, err := a.Metadata.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("failed to load device id: %w", err)
	}
	fmt.Printf("Device:   %s\n", deviceID)

	for _, entityType := range models.EntityTypes {
		pending, err := a.Store.GetPending(ctx, entityType)
		if err != nil {
			return fmt.Errorf("failed to load pending %s: %w", entityType, err)
		}

		lastSync, err := a.Metadata.GetLastSync(ctx, entityType)
		if err != nil {
			return fmt.Errorf("failed to load %s watermark: %w", entityType, err)
		}

		watermark := "never"
		if !lastSync.IsZero() {
			watermark = lastSync.Format(time.RFC3339)
		}
		fmt.Printf("%s: %d pending, last synced %s\n", entityType, len(pending), watermark)
	}

	return nil
}

// ResolveOptions identifies the conflict to resolve and the strategy.
type ResolveOptions struct {
	EntityType string
	RecordID   string
	Strategy   string
}

// RunResolve applies an explicit strategy to a flagged conflict: the
// surviving version is reported to the server and persisted locally.
func (a *App) RunResolve(ctx context.Context, opts ResolveOptions) error {
	strategy := conflict.Strategy(opts.Strategy)
	if !strategy.Valid() {
		return fmt.Errorf("unknown strategy %q (client_wins|server_wins|keep_newest|merge)", opts.Strategy)
	}

	local, err := a.Store.Get(ctx, opts.RecordID)
	if err != nil {
		return fmt.Errorf("failed to load local record: %w", err)
	}

	remoteRec, err := a.Remote.FetchRecord(ctx, opts.EntityType, opts.RecordID)
	if err != nil {
		return fmt.Errorf("failed to fetch remote counterpart: %w", err)
	}

	if !conflict.DetectConflict(local, remoteRec) {
		fmt.Printf("record %s is not in conflict\n", opts.RecordID)
		return nil
	}

	winner, err := conflict.Resolve(local, remoteRec, strategy)
	if err != nil {
		return err
	}

	deviceID, err := a.Metadata.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("failed to load device id: %w", err)
	}

	req := api.ResolveConflictRequest{
		RecordID:   opts.RecordID,
		RecordType: opts.EntityType,
		DeviceID:   deviceID,
	}
	if bytes.Equal(winner.Payload, local.Payload) {
		req.Resolution = "client_wins"
		wire := api.SyncRecord{
			ID:         winner.ID,
			OwnerID:    winner.OwnerID,
			DeviceID:   winner.DeviceID,
			EntityType: winner.EntityType,
			Payload:    winner.Payload,
			CreatedAt:  winner.CreatedAt,
			UpdatedAt:  winner.UpdatedAt,
		}
		req.ClientData = &wire
	} else {
		req.Resolution = "server_wins"
	}

	resp, err := a.Remote.ResolveConflict(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to report resolution: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("server rejected the resolution")
	}

	winner.SyncStatus = models.SyncStatusSynced
	if err := a.Store.Save(ctx, winner); err != nil {
		return fmt.Errorf("failed to persist resolved record: %w", err)
	}

	fmt.Printf("resolved %s: %s kept\n", opts.RecordID, req.Resolution)
	return nil
}

// LogsOptions narrows a logs query.
type LogsOptions struct {
	DeviceID string
	SyncType string
	Status   string
	Page     int
	PageSize int
	Remote   bool
}

// RunLogs prints the sync audit trail, newest first. By default it reads
// the local trail; with Remote set it queries the server-side one instead.
func (a *App) RunLogs(ctx context.Context, opts LogsOptions) error {
	filter := models.LogFilter{
		DeviceID: opts.DeviceID,
		SyncType: models.SyncType(opts.SyncType),
		Status:   models.LogStatus(opts.Status),
	}

	if opts.Remote {
		return a.runRemoteLogs(ctx, filter, opts)
	}

	entries, total, err := a.Logs.Query(ctx, filter, opts.Page, opts.PageSize)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tTYPE\tSTATUS\tRECORDS\tERROR")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			entry.Timestamp.Format(time.RFC3339),
			entry.SyncType, entry.Status, entry.RecordCount, entry.ErrorMessage)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("page %d, %d entr(ies) total\n", opts.Page, total)
	return nil
}

func (a *App) runRemoteLogs(ctx context.Context, filter models.LogFilter, opts LogsOptions) error {
	resp, err := a.Remote.FetchLogs(ctx, filter, opts.Page, opts.PageSize)
	if err != nil {
		return fmt.Errorf("failed to fetch remote logs: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tDEVICE\tTYPE\tSTATUS\tRECORDS\tERROR")
	for _, entry := range resp.Entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			entry.Timestamp.Format(time.RFC3339),
			entry.DeviceID, entry.SyncType, entry.Status, entry.RecordCount, entry.ErrorMessage)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("page %d, %d entr(ies) total\n", resp.Page, resp.Total)
	return nil
}

// RunDaemon runs the background engine: the network monitor, a drain and
// sync on every reconnect, and a periodic drain tick. It blocks until the
// context is canceled.
func (a *App) RunDaemon(ctx context.Context) error {
	a.Monitor.Subscribe(func(state models.NetworkState) {
		// subscribers must not block the monitor goroutine
		go func() {
			if _, err := a.Queue.Drain(ctx); err != nil {
				a.Logger.Error("queue drain after reconnect failed", "error", err)
			}
			if err := a.backgroundSync(ctx); err != nil {
				a.Logger.Error("sync after reconnect failed", "error", err)
			}
		}()
	})

	monitorDone := make(chan error, 1)
	go func() {
		monitorDone <- a.Monitor.Run(ctx)
	}()

	// the probe decides whether the link is actually usable
	a.Monitor.SetLinkState(models.NetworkTypeOther)

	ticker := time.NewTicker(a.DrainInterval)
	defer ticker.Stop()

	a.Logger.Info("background sync engine started",
		"drain_interval", a.DrainInterval, "user_id", a.UserID)

	for {
		select {
		case <-ctx.Done():
			<-monitorDone
			a.Logger.Info("background sync engine stopped")
			return nil
		case <-ticker.C:
			if !a.Monitor.State().Online() {
				continue
			}
			if _, err := a.Queue.Drain(ctx); err != nil {
				a.Logger.Error("periodic queue drain failed", "error", err)
			}
		}
	}
}

func (a *App) backgroundSync(ctx context.Context) error {
	changes := make(map[string][]*models.SyncableRecord, len(models.EntityTypes))
	for _, entityType := range models.EntityTypes {
		pending, err := a.Store.GetPending(ctx, entityType)
		if err != nil {
			return fmt.Errorf("failed to load pending %s: %w", entityType, err)
		}
		changes[entityType] = pending
	}

	batch, err := a.Coordinator.SyncBatch(ctx, a.UserID, changes, time.Time{})
	if err != nil {
		return err
	}
	if !batch.Success {
		a.Logger.Warn("background sync finished with failures",
			"failed", batch.Aggregate.FailedCount,
			"conflicts", batch.Aggregate.ConflictCount)
	}
	return nil
}
