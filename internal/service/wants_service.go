package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smsledger/internal/models"
	"smsledger/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WantsService covers the discretionary track's dashboard operations:
// semi-annual budgets and their manual transactions.
type WantsService struct {
	budgetRepo *repository.WantsBudgetRepository
	txRepo     *repository.WantsTransactionRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewWantsService(
	budgetRepo *repository.WantsBudgetRepository,
	txRepo *repository.WantsTransactionRepository,
	logger *zap.Logger,
) *WantsService {
	return &WantsService{
		budgetRepo: budgetRepo,
		txRepo:     txRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateBudget creates the wants budget for (year, half). The period
// bounds are computed, never supplied by the caller.
func (s *WantsService) CreateBudget(ctx context.Context, userID uuid.UUID, year, half int, totalAmount float64) (*models.WantsBudget, error) {
	if totalAmount <= 0 {
		return nil, fmt.Errorf("%w: budget amount must be greater than 0", ErrValidation)
	}
	period, err := PeriodBounds(year, half, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	budget := &models.WantsBudget{
		UserID:      userID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		TotalAmount: totalAmount,
	}
	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrWantsBudgetExists
		}
		return nil, err
	}
	return budget, nil
}

func (s *WantsService) ListBudgets(ctx context.Context, userID uuid.UUID) ([]*models.WantsBudget, error) {
	return s.budgetRepo.List(ctx, userID)
}

// CurrentBudget returns the wants budget covering today, with its
// transactions. ErrWantsBudgetNotFound when none is configured.
func (s *WantsService) CurrentBudget(ctx context.Context, userID uuid.UUID) (*models.WantsBudget, []*models.WantsTransaction, error) {
	period := PeriodForDate(s.now())

	budget, err := s.budgetRepo.GetByPeriodStart(ctx, userID, period.Start)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrWantsBudgetNotFound
		}
		return nil, nil, err
	}

	transactions, err := s.txRepo.ListByBudget(ctx, budget.ID, userID)
	if err != nil {
		return nil, nil, err
	}
	return budget, transactions, nil
}

func (s *WantsService) GetBudget(ctx context.Context, userID uuid.UUID, id int) (*models.WantsBudget, []*models.WantsTransaction, error) {
	budget, err := s.budgetRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrWantsBudgetNotFound
		}
		return nil, nil, err
	}

	transactions, err := s.txRepo.ListByBudget(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}
	return budget, transactions, nil
}

func (s *WantsService) DeleteBudget(ctx context.Context, userID uuid.UUID, id int) error {
	err := s.budgetRepo.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWantsBudgetNotFound
	}
	return err
}

// CreateTransaction records a manual wants expense. Wants transactions
// carry no category.
func (s *WantsService) CreateTransaction(
	ctx context.Context,
	userID uuid.UUID,
	wantsBudgetID int,
	amount float64,
	note *string,
	date time.Time,
) (*models.WantsTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	}
	if note != nil && len(*note) > maxNoteLength {
		return nil, fmt.Errorf("%w: note must be %d characters or less", ErrValidation, maxNoteLength)
	}

	today := truncateToDay(s.now())
	if truncateToDay(date).After(today) {
		return nil, fmt.Errorf("%w: transaction date cannot be in the future", ErrValidation)
	}

	if _, err := s.budgetRepo.GetByID(ctx, wantsBudgetID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWantsBudgetNotFound
		}
		return nil, err
	}

	tx := &models.WantsTransaction{
		UserID:          userID,
		WantsBudgetID:   wantsBudgetID,
		Amount:          amount,
		Note:            note,
		TransactionDate: date,
		Source:          models.SourceManual,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *WantsService) DeleteTransaction(ctx context.Context, userID uuid.UUID, txID int) error {
	err := s.txRepo.Delete(ctx, txID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTransactionNotFound
	}
	return err
}
