package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"monastery-guide/internal/api"
	"monastery-guide/internal/api/handlers"
	"monastery-guide/internal/repository"
	"monastery-guide/internal/service"
	"monastery-guide/pkg/config"
	"monastery-guide/pkg/logger"
	"monastery-guide/pkg/postgres"

	"go.uber.org/zap"
)

// @title Sikkim Monasteries API
// @version 1.0
// @description Content backend for virtual heritage tours of Sikkim monasteries with an AI guide.

// @host localhost:8080
// @BasePath /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting monastery guide service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	// Initialize repositories
	monasteryRepo := repository.NewMonasteryRepository(db, appLogger)
	chatRepo := repository.NewChatRepository(db, appLogger)
	statusRepo := repository.NewStatusRepository(db, appLogger)

	// The AI credential is optional; without it the chat relay reports
	// "AI service not configured" and everything else keeps working.
	var llmService service.ChatCompleter
	if cfg.AI.APIKey != "" {
		svc, err := service.NewLLMService(&cfg.AI, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
		}
		llmService = svc
	} else {
		appLogger.Warn("AI_API_KEY not set, chat endpoint will be unavailable")
	}

	// Initialize services
	catalogService := service.NewCatalogService(monasteryRepo, appLogger)
	chatService := service.NewChatService(monasteryRepo, chatRepo, llmService, cfg.AI.RequestTimeout, appLogger)
	statusService := service.NewStatusService(statusRepo, appLogger)

	// Initialize handlers
	monasteryHandler := handlers.NewMonasteryHandler(catalogService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	statusHandler := handlers.NewStatusHandler(statusService, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, monasteryHandler, chatHandler, statusHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
