package repository

import (
	"context"

	"smsledger/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BudgetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BudgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	query := squirrel.Insert("budgets").
		Columns("user_id", "month", "total_budget").
		Values(budget.UserID, budget.Month, budget.TotalBudget).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&budget.ID, &budget.CreatedAt)
	return translateError(err)
}

func (r *BudgetRepository) GetByID(ctx context.Context, id int, userID uuid.UUID) (*models.Budget, error) {
	query := squirrel.Select("id", "user_id", "month", "total_budget", "created_at").
		From("budgets").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var budget models.Budget
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&budget.ID, &budget.UserID, &budget.Month, &budget.TotalBudget, &budget.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &budget, nil
}

// GetByUserAndMonth selects the budget keyed by a "YYYY-MM" month.
// Returns ErrNotFound when absent; never creates.
func (r *BudgetRepository) GetByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*models.Budget, error) {
	query := squirrel.Select("id", "user_id", "month", "total_budget", "created_at").
		From("budgets").
		Where(squirrel.Eq{"user_id": userID, "month": month}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var budget models.Budget
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&budget.ID, &budget.UserID, &budget.Month, &budget.TotalBudget, &budget.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &budget, nil
}

func (r *BudgetRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.Budget, error) {
	query := squirrel.Select("id", "user_id", "month", "total_budget", "created_at").
		From("budgets").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("month DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		var budget models.Budget
		if err := rows.Scan(
			&budget.ID, &budget.UserID, &budget.Month, &budget.TotalBudget, &budget.CreatedAt,
		); err != nil {
			return nil, err
		}
		budgets = append(budgets, &budget)
	}

	return budgets, rows.Err()
}

func (r *BudgetRepository) Delete(ctx context.Context, id int, userID uuid.UUID) error {
	query := squirrel.Delete("budgets").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CategorySpend is one row of a budget's per-category spending summary.
type CategorySpend struct {
	CategoryID *int
	Total      float64
}

// SpendingByCategory sums transaction amounts per category for one
// budget. A nil CategoryID bucket collects uncategorized spending.
func (r *BudgetRepository) SpendingByCategory(ctx context.Context, budgetID int, userID uuid.UUID) ([]CategorySpend, error) {
	query := squirrel.Select("category_id", "SUM(amount) AS total").
		From("transactions").
		Where(squirrel.Eq{"budget_id": budgetID, "user_id": userID}).
		GroupBy("category_id").
		OrderBy("total DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summary []CategorySpend
	for rows.Next() {
		var spend CategorySpend
		if err := rows.Scan(&spend.CategoryID, &spend.Total); err != nil {
			return nil, err
		}
		summary = append(summary, spend)
	}

	return summary, rows.Err()
}
