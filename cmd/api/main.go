package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecakir/webhook-processor/internal/api"
	"github.com/ecakir/webhook-processor/internal/config"
	"github.com/ecakir/webhook-processor/internal/db"
	"github.com/ecakir/webhook-processor/internal/logger"
	"github.com/ecakir/webhook-processor/internal/metrics"
	"github.com/ecakir/webhook-processor/internal/repository/postgres"
	"github.com/ecakir/webhook-processor/internal/services"
	"github.com/ecakir/webhook-processor/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	// The unique constraint on transaction_id is the system's only guard
	// against double-processing. Refuse to serve without it.
	if err := db.VerifyTransactionKey(ctx, pool); err != nil {
		log.Error("uniqueness constraint check", "err", err)
		os.Exit(1)
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueue)
	defer wp.Stop()

	txnSvc := services.NewTransactionService(repos.Transactions, repos.EventLogs, wp, cfg.SettlementDelay)

	metrics.Init()
	r := api.NewRouter(cfg, txnSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "settlement_delay", cfg.SettlementDelay.String())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	// Queued settlement updates drain via wp.Stop(); settlements still in
	// their delay window are lost and those records stay PROCESSING.
}
