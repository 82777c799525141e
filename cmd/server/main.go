package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmuturi/pesatrack-be/internal/config"
	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/internal/eventbus"
	"github.com/dmuturi/pesatrack-be/internal/handler"
	"github.com/dmuturi/pesatrack-be/internal/server"
	"github.com/dmuturi/pesatrack-be/internal/service"
	"github.com/dmuturi/pesatrack-be/internal/storage"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	repo := newRepository(ctx, cfg, log)
	log.Info(ctx, "Repository initialized", "driver", cfg.Storage.Driver)

	bus := eventbus.New(log, &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	})

	extractionConsumer := eventbus.NewExtractionConsumer(repo, log, cfg.Worker.PoolSize)
	if err := bus.Subscribe(eventbus.EventTypeTransactionExtracted, extractionConsumer); err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer", "error", err)
	}
	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start event bus", "error", err)
	}
	log.Info(ctx, "Event bus started", "worker_count", cfg.Worker.PoolSize)

	processor := service.NewStatementProcessor(bus, repo, log)
	statementService := service.NewStatementService(repo, processor, log)
	smsService := service.NewSMSService(repo, log)
	expenseService := service.NewExpenseService(repo, log)

	srv := server.New(
		cfg,
		log,
		handler.NewSMSHandler(smsService, log),
		handler.NewStatementHandler(statementService, log),
		handler.NewExpenseHandler(expenseService, log),
		handler.NewHealthHandler(),
	)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server", "error", err)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error", "error", err)
	}
	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error", "error", err)
	}

	log.Info(ctx, "Application stopped gracefully")
}

func newRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) domain.Repository {
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := storage.NewGormStore(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal(ctx, "Failed to open SQLite store", "error", err)
		}
		return store
	default:
		return storage.NewMemoryStore()
	}
}
