package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storehub/database"
	"storehub/internal/config"
	"storehub/internal/ingestion/supplierfeed"
)

// supplier-sync pulls every active supplier's feed on a fixed interval
// and reconciles prices and stock levels into the catalogue.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, pool, err := database.ConnectDB(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer pool.Close()

	syncService := supplierfeed.NewSyncService(supplierfeed.SyncConfig{
		WorkerCount: cfg.SupplierSyncWorkers,
		FeedRPS:     cfg.SupplierFeedRPS,
	}, db)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	runOnce := len(os.Args) > 1 && os.Args[1] == "--once"

	if err := syncService.SyncAll(ctx); err != nil {
		logger.Error("sync failed", "error", err)
	}
	if runOnce {
		return
	}

	ticker := time.NewTicker(cfg.SupplierSyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := syncService.SyncAll(ctx); err != nil {
				logger.Error("sync failed", "error", err)
			}
		case sig := <-sigCh:
			logger.Info("shutting down", "signal", sig.String())
			cancel()
			return
		}
	}
}
