package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"smsledger/internal/models"
	"smsledger/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

const maxNoteLength = 500

// BudgetService covers the dashboard-facing monthly budget and manual
// transaction operations. The SMS pipeline never goes through here.
type BudgetService struct {
	budgetRepo   *repository.BudgetRepository
	txRepo       *repository.TransactionRepository
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

func NewBudgetService(
	budgetRepo *repository.BudgetRepository,
	txRepo *repository.TransactionRepository,
	categoryRepo *repository.CategoryRepository,
	logger *zap.Logger,
) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, month string, totalBudget float64) (*models.Budget, error) {
	if !monthKeyRegex.MatchString(month) {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", ErrValidation)
	}
	if totalBudget <= 0 {
		return nil, fmt.Errorf("%w: budget amount must be greater than 0", ErrValidation)
	}

	budget := &models.Budget{
		UserID:      userID,
		Month:       month,
		TotalBudget: totalBudget,
	}
	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrBudgetExists
		}
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID) ([]*models.Budget, error) {
	return s.budgetRepo.List(ctx, userID)
}

func (s *BudgetService) GetBudget(ctx context.Context, userID uuid.UUID, id int) (*models.Budget, []*models.Transaction, error) {
	budget, err := s.budgetRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrBudgetNotFound
		}
		return nil, nil, err
	}

	transactions, err := s.txRepo.ListByBudget(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}
	return budget, transactions, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, userID uuid.UUID, id int) error {
	err := s.budgetRepo.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBudgetNotFound
	}
	return err
}

// BudgetSummary returns per-category spending for one budget with
// category names resolved. Uncategorized spending appears with a nil
// category.
type BudgetSummary struct {
	Budget     *models.Budget
	TotalSpent float64
	ByCategory []CategoryTotal
}

type CategoryTotal struct {
	CategoryID   *int
	CategoryName *string
	Total        float64
}

func (s *BudgetService) Summary(ctx context.Context, userID uuid.UUID, budgetID int) (*BudgetSummary, error) {
	budget, err := s.budgetRepo.GetByID(ctx, budgetID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, err
	}

	spends, err := s.budgetRepo.SpendingByCategory(ctx, budgetID, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	summary := &BudgetSummary{Budget: budget}
	for _, spend := range spends {
		total := CategoryTotal{CategoryID: spend.CategoryID, Total: spend.Total}
		if spend.CategoryID != nil {
			if name, ok := names[*spend.CategoryID]; ok {
				total.CategoryName = &name
			}
		}
		summary.TotalSpent += spend.Total
		summary.ByCategory = append(summary.ByCategory, total)
	}
	return summary, nil
}

// CreateTransaction records a manual expense against a budget,
// enforcing the same rules the dashboard form does: positive amount,
// owned budget and category, no future dates, bounded note.
func (s *BudgetService) CreateTransaction(
	ctx context.Context,
	userID uuid.UUID,
	budgetID int,
	amount float64,
	categoryID *int,
	note *string,
	date time.Time,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	}
	if note != nil && len(*note) > maxNoteLength {
		return nil, fmt.Errorf("%w: note must be %d characters or less", ErrValidation, maxNoteLength)
	}

	today := truncateToDay(time.Now())
	if truncateToDay(date).After(today) {
		return nil, fmt.Errorf("%w: transaction date cannot be in the future", ErrValidation)
	}

	if _, err := s.budgetRepo.GetByID(ctx, budgetID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, err
	}

	if categoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *categoryID, userID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	tx := &models.Transaction{
		UserID:          userID,
		BudgetID:        budgetID,
		CategoryID:      categoryID,
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

// UpdateTransactionCategory reassigns or clears (nil) a transaction's
// category. Category reassignment is the only mutation transactions
// allow.
func (s *BudgetService) UpdateTransactionCategory(ctx context.Context, userID uuid.UUID, txID int, categoryID *int) error {
	if categoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *categoryID, userID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
	}

	err := s.txRepo.UpdateCategory(ctx, txID, userID, categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTransactionNotFound
	}
	return err
}

func (s *BudgetService) DeleteTransaction(ctx context.Context, userID uuid.UUID, txID int) error {
	err := s.txRepo.Delete(ctx, txID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTransactionNotFound
	}
	return err
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
