package service

import (
	"context"
	"time"

	"smsledger/internal/models"

	"github.com/google/uuid"
)

// Narrow store interfaces consumed by the SMS pipeline. The concrete
// repositories satisfy them; tests substitute in-memory fakes.

type BudgetFinder interface {
	GetByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*models.Budget, error)
}

type WantsBudgetFinder interface {
	GetByPeriodStart(ctx context.Context, userID uuid.UUID, periodStart time.Time) (*models.WantsBudget, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByMessageID(ctx context.Context, messageID string) (*models.Transaction, error)
}

type WantsTransactionStore interface {
	Create(ctx context.Context, tx *models.WantsTransaction) error
	GetByMessageID(ctx context.Context, messageID string) (*models.WantsTransaction, error)
}
