package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smsledger/internal/api"
	"smsledger/internal/api/handlers"
	"smsledger/internal/repository"
	"smsledger/internal/service"
	"smsledger/pkg/config"
	"smsledger/pkg/logger"
	"smsledger/pkg/postgres"

	"go.uber.org/zap"
)

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
	appLogger.Info("Starting smsledger service")

	if cfg.Twilio.AuthToken == "" {
		appLogger.Warn("TWILIO_AUTH_TOKEN not set; the SMS webhook will reject all deliveries")
	}
	if cfg.Twilio.PublicURL == "" {
		appLogger.Warn("PUBLIC_URL not set; webhook signature verification cannot succeed")
	}

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	wantsBudgetRepo := repository.NewWantsBudgetRepository(db, appLogger)
	wantsTxRepo := repository.NewWantsTransactionRepository(db, appLogger)

	// Initialize services
	smsService := service.NewSMSService(budgetRepo, wantsBudgetRepo, txRepo, wantsTxRepo, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, txRepo, categoryRepo, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	wantsService := service.NewWantsService(wantsBudgetRepo, wantsTxRepo, appLogger)

	// Initialize handlers. The configured user ID stands in for the
	// session layer; everything below takes it as an argument.
	userID := cfg.App.DefaultUserID
	smsHandler := handlers.NewSMSHandler(smsService, cfg.Twilio, userID, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, userID, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, userID, appLogger)
	transactionHandler := handlers.NewTransactionHandler(budgetService, categoryService, userID, appLogger)
	wantsHandler := handlers.NewWantsHandler(wantsService, userID, appLogger)

	// Setup router
	app := api.SetupRouter(smsHandler, budgetHandler, categoryHandler, transactionHandler, wantsHandler)

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
