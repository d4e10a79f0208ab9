// Command seed provisions starter data for the configured user: a
// default category set, the current month's budget, and the current
// wants period's budget. Safe to re-run; existing rows are kept.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"smsledger/internal/repository"
	"smsledger/internal/service"
	"smsledger/pkg/config"
	"smsledger/pkg/logger"
	"smsledger/pkg/postgres"

	"go.uber.org/zap"
)

var defaultCategories = []struct {
	Name  string
	Color string
}{
	{"Groceries", "#10B981"},
	{"Dining", "#F59E0B"},
	{"Transport", "#3B82F6"},
	{"Utilities", "#6366F1"},
	{"Health", "#EF4444"},
	{"Entertainment", "#8B5CF6"},
}

const (
	defaultMonthlyBudget = 2000.00
	defaultWantsBudget   = 1500.00
)

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

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	userID := cfg.App.DefaultUserID
	appLogger.Info("Seeding starter data", zap.String("user_id", userID.String()))

	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	wantsBudgetRepo := repository.NewWantsBudgetRepository(db, appLogger)

	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, nil, categoryRepo, appLogger)
	wantsService := service.NewWantsService(wantsBudgetRepo, nil, appLogger)

	for _, c := range defaultCategories {
		if _, err := categoryService.Create(ctx, userID, c.Name, c.Color); err != nil {
			if errors.Is(err, service.ErrCategoryExists) {
				continue
			}
			appLogger.Fatal("Failed to seed category", zap.String("name", c.Name), zap.Error(err))
		}
		appLogger.Info("Seeded category", zap.String("name", c.Name))
	}

	now := time.Now()
	month := service.MonthKey(now)
	if _, err := budgetService.CreateBudget(ctx, userID, month, defaultMonthlyBudget); err != nil {
		if !errors.Is(err, service.ErrBudgetExists) {
			appLogger.Fatal("Failed to seed monthly budget", zap.Error(err))
		}
	} else {
		appLogger.Info("Seeded monthly budget", zap.String("month", month))
	}

	period := service.PeriodForDate(now)
	half := 1
	if period.Start.Month() == time.July {
		half = 2
	}
	if _, err := wantsService.CreateBudget(ctx, userID, period.Start.Year(), half, defaultWantsBudget); err != nil {
		if !errors.Is(err, service.ErrWantsBudgetExists) {
			appLogger.Fatal("Failed to seed wants budget", zap.Error(err))
		}
	} else {
		appLogger.Info("Seeded wants budget", zap.String("period", period.Label))
	}

	appLogger.Info("Seeding completed")
}
