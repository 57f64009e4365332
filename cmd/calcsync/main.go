package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nvoronin/calcsync/internal/auth"
	"github.com/nvoronin/calcsync/internal/cli"
	"github.com/nvoronin/calcsync/internal/config"
	"github.com/nvoronin/calcsync/internal/netmon"
	"github.com/nvoronin/calcsync/internal/queue"
	"github.com/nvoronin/calcsync/internal/remote"
	"github.com/nvoronin/calcsync/internal/storage/boltdb"
	"github.com/nvoronin/calcsync/internal/storage/sqlite"
	"github.com/nvoronin/calcsync/internal/syncer"
	"github.com/nvoronin/calcsync/internal/synclog"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file")
	serverURL := flag.String("server", "", "Sync server URL (overrides config)")
	userID := flag.String("user", os.Getenv("CALCSYNC_USER"), "User id to sync as")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]
	if command == "version" {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(command, args[1:], *configPath, *serverURL, *userID, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, configPath, serverURL, userID string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if userID == "" {
		return fmt.Errorf("no user id: pass -user or set CALCSYNC_USER")
	}

	for _, dir := range []string{filepath.Dir(cfg.DBPath), filepath.Dir(cfg.LogDBPath)} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	var boltOpts []boltdb.Option
	if cfg.Passphrase != "" {
		boltOpts = append(boltOpts, boltdb.WithPassphrase(cfg.Passphrase))
	}
	boltStore, err := boltdb.New(ctx, cfg.DBPath, boltOpts...)
	if err != nil {
		return fmt.Errorf("failed to open local database: %w", err)
	}
	defer func() {
		if err := boltStore.Close(); err != nil {
			logger.Error("failed to close local database", "error", err)
		}
	}()

	logStore, err := sqlite.New(ctx, cfg.LogDBPath)
	if err != nil {
		return fmt.Errorf("failed to open sync log database: %w", err)
	}
	defer func() {
		if err := logStore.Close(); err != nil {
			logger.Error("failed to close sync log database", "error", err)
		}
	}()

	token := cfg.Token
	if token == "" {
		token, err = cli.ReadToken()
		if err != nil {
			return err
		}
	}

	client := remote.NewHTTPClient(cfg.ServerURL, auth.NewStaticTokenSource(token))
	passLog := synclog.New(logStore, logger)
	coordinator := syncer.New(client, boltStore, boltStore, nil, passLog, logger)

	monitor := netmon.NewMonitor(
		netmon.NewHTTPProber(cfg.ProbeURLs),
		logger,
		netmon.WithProbeInterval(cfg.ProbeInterval),
		netmon.WithFailureThreshold(cfg.FailureThreshold),
	)

	offlineQueue := queue.New(boltStore, monitor, coordinator, passLog, logger,
		queue.WithMaxRetryAttempts(cfg.MaxRetryAttempts),
		queue.WithDrainBatch(cfg.DrainBatch),
	)
	coordinator.SetQueue(offlineQueue)

	app := &cli.App{
		Coordinator:   coordinator,
		Queue:         offlineQueue,
		Monitor:       monitor,
		Logs:          passLog,
		Remote:        client,
		Store:         boltStore,
		Metadata:      boltStore,
		Logger:        logger,
		UserID:        userID,
		DrainInterval: cfg.DrainInterval,
	}

	switch command {
	case "sync":
		return app.RunSync(ctx)
	case "status":
		return app.RunStatus(ctx)
	case "resolve":
		return runResolve(ctx, app, args)
	case "logs":
		return runLogs(ctx, app, args)
	case "run":
		return app.RunDaemon(ctx)
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func runResolve(ctx context.Context, app *cli.App, args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	opts := cli.ResolveOptions{}
	fs.StringVar(&opts.EntityType, "type", "calculations", "Entity type of the record")
	fs.StringVar(&opts.RecordID, "id", "", "Record id to resolve")
	fs.StringVar(&opts.Strategy, "strategy", "keep_newest", "Resolution strategy (client_wins|server_wins|keep_newest|merge)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.RecordID == "" {
		return fmt.Errorf("resolve requires -id")
	}
	return app.RunResolve(ctx, opts)
}

func runLogs(ctx context.Context, app *cli.App, args []string) error {
	fs := flag.NewFlagSet("logs", flag.ContinueOnError)
	opts := cli.LogsOptions{}
	fs.StringVar(&opts.DeviceID, "device", "", "Filter by device id")
	fs.StringVar(&opts.SyncType, "type", "", "Filter by sync type (upload|download|bidirectional)")
	fs.StringVar(&opts.Status, "status", "", "Filter by status (success|failed)")
	fs.IntVar(&opts.Page, "page", 1, "Page number")
	fs.IntVar(&opts.PageSize, "page-size", 20, "Entries per page")
	fs.BoolVar(&opts.Remote, "remote", false, "Query the server-side audit trail instead of the local one")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return app.RunLogs(ctx, opts)
}

func printVersion() {
	fmt.Printf("calcsync\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
