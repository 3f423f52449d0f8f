package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/taskquest/backend/internal/config"
	"github.com/taskquest/backend/internal/services"
	"github.com/taskquest/backend/internal/services/lifecycle"
	"github.com/taskquest/backend/pkg/latency"
	"github.com/taskquest/backend/pkg/logger"
	boltRepo "github.com/taskquest/backend/repository/bolt"
	"github.com/taskquest/backend/usecase"
	gamificationUC "github.com/taskquest/backend/usecase/gamification"
	taskUC "github.com/taskquest/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx := manager.Context(context.Background())

	store, err := boltRepo.Open(cfg.Store.Path, cfg.Store.Bucket)
	if err != nil {
		zapLogger.Fatal("failed to open snapshot store", zap.Error(err))
	}
	manager.Register("snapshot_store", func(ctx context.Context) error {
		return store.Close()
	})

	taskService, err := taskUC.New(appCtx, store, latency.Fixed(cfg.Latency.Operation), zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to initialize task store", zap.Error(err))
	}

	gamificationService := gamificationUC.New(store, zapLogger)

	if cfg.Audit.Enabled {
		auditor := services.NewAuditor(store, zapLogger, services.AuditConfig{
			Interval: cfg.Audit.Interval,
		})
		auditor.Start()
		manager.Register("auditor", func(ctx context.Context) error {
			auditor.Stop(ctx)
			return nil
		})
	}

	dispatcher := usecase.NewDispatcher()
	registerOperations(dispatcher, taskService, gamificationService)

	zapLogger.Info("core ready",
		zap.String("environment", cfg.Environment),
		zap.String("store", cfg.Store.Path),
		zap.Int("store_txn", store.Stats().TxN),
		zap.Strings("operations", dispatcher.Operations()))

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
