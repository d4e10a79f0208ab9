package repository

import (
	"context"
	"time"

	"smsledger/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type WantsBudgetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewWantsBudgetRepository(db *pgxpool.Pool, logger *zap.Logger) *WantsBudgetRepository {
	return &WantsBudgetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *WantsBudgetRepository) Create(ctx context.Context, budget *models.WantsBudget) error {
	query := squirrel.Insert("wants_budgets").
		Columns("user_id", "period_start", "period_end", "total_amount").
		Values(budget.UserID, budget.PeriodStart, budget.PeriodEnd, budget.TotalAmount).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&budget.ID, &budget.CreatedAt)
	return translateError(err)
}

func (r *WantsBudgetRepository) GetByID(ctx context.Context, id int, userID uuid.UUID) (*models.WantsBudget, error) {
	query := squirrel.Select("id", "user_id", "period_start", "period_end", "total_amount", "created_at").
		From("wants_budgets").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var budget models.WantsBudget
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&budget.ID, &budget.UserID, &budget.PeriodStart, &budget.PeriodEnd,
		&budget.TotalAmount, &budget.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &budget, nil
}

// GetByPeriodStart selects the wants budget whose period starts on the
// given date. Returns ErrNotFound when absent; never creates.
func (r *WantsBudgetRepository) GetByPeriodStart(ctx context.Context, userID uuid.UUID, periodStart time.Time) (*models.WantsBudget, error) {
	query := squirrel.Select("id", "user_id", "period_start", "period_end", "total_amount", "created_at").
		From("wants_budgets").
		Where(squirrel.Eq{"user_id": userID, "period_start": periodStart}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var budget models.WantsBudget
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&budget.ID, &budget.UserID, &budget.PeriodStart, &budget.PeriodEnd,
		&budget.TotalAmount, &budget.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &budget, nil
}

func (r *WantsBudgetRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.WantsBudget, error) {
	query := squirrel.Select("id", "user_id", "period_start", "period_end", "total_amount", "created_at").
		From("wants_budgets").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("period_start DESC").
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

	var budgets []*models.WantsBudget
	for rows.Next() {
		var budget models.WantsBudget
		if err := rows.Scan(
			&budget.ID, &budget.UserID, &budget.PeriodStart, &budget.PeriodEnd,
			&budget.TotalAmount, &budget.CreatedAt,
		); err != nil {
			return nil, err
		}
		budgets = append(budgets, &budget)
	}

	return budgets, rows.Err()
}

func (r *WantsBudgetRepository) Delete(ctx context.Context, id int, userID uuid.UUID) error {
	query := squirrel.Delete("wants_budgets").
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
