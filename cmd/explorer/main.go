package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/anomaly-explorer/internal/chart"
	corecfg "github.com/aevon-lab/anomaly-explorer/internal/core/config"
	"github.com/aevon-lab/anomaly-explorer/internal/core/storage/postgres"
	"github.com/aevon-lab/anomaly-explorer/internal/focus"
	"github.com/aevon-lab/anomaly-explorer/internal/ingestion"
	"github.com/aevon-lab/anomaly-explorer/internal/migrations"
	"github.com/aevon-lab/anomaly-explorer/internal/server"
	"github.com/aevon-lab/anomaly-explorer/internal/telemetry"
	"github.com/aevon-lab/anomaly-explorer/internal/timeseries"
	"github.com/shopspring/decimal"
)

func main() {
	configPath := flag.String("config", "explorer.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Chart values go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"jobs_dir", cfg.JobLoading.ConfigDir,
		"jobs", cfg.JobLoading.Count,
		"mode", cfg.Server.Mode,
	)

	// 2. Open Storage (PostgreSQL) and run migrations before preparing statements
	db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		_ = db.Close()
		os.Exit(1)
	}

	dbAdapter, err := postgres.NewAdapter(db)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		_ = db.Close()
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 3. Query collaborators over storage, with retries on transient failures
	client := timeseries.NewClient(dbAdapter, dbAdapter, dbAdapter, timeseries.RetryPolicy{
		Attempts: uint(cfg.Retry.Attempts),
		Delay:    cfg.Retry.RetryDelay(),
	})

	// 4. Initialize Telemetry
	reporter := telemetry.NewReporter()

	// 5. Initialize Focus (query API + loading stream)
	focusSvc := focus.NewService(
		client.Sources(),
		chart.NewProcessor(),
		cfg.JobLoading.Repository,
		focus.WithReporter(reporter),
	)

	// 6. Initialize Ingestion (annotations)
	ingestionSvc := ingestion.NewService(cfg.JobLoading.Repository, dbAdapter, cfg.Server.MaxBodySizeMB)

	// 7. Initialize Server
	readTimeout, writeTimeout, shutdownTimeout := cfg.Server.Timeouts()
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter.DB(), server.Options{
		Mode:            cfg.Server.Mode,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
		Metrics:         reporter.Handler(),
	})
	focusSvc.RegisterRoutes(srv.Engine)
	ingestionSvc.RegisterRoutes(srv.Engine)

	// 8. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
