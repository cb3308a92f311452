package main

import (
	"context"
	"log"

	"monastery-guide/internal/repository"
	"monastery-guide/internal/service"
	"monastery-guide/pkg/config"
	"monastery-guide/pkg/logger"
	"monastery-guide/pkg/postgres"

	"go.uber.org/zap"
)

// Seeds the monastery catalog without going through the HTTP API. Running it
// against an already-seeded database is a no-op.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	monasteryRepo := repository.NewMonasteryRepository(db, appLogger)
	catalogService := service.NewCatalogService(monasteryRepo, appLogger)

	message, err := catalogService.Initialize(ctx)
	if err != nil {
		appLogger.Fatal("Failed to seed monastery catalog", zap.Error(err))
	}

	appLogger.Info("Database seeding completed", zap.String("result", message))
}
