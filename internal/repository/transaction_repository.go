package repository

import (
	"context"

	"smsledger/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a transaction as a single statement. A duplicate
// twilio_message_id surfaces as ErrUniqueViolation, which the SMS
// pipeline treats as "already processed". The constraint, not the
// earlier pre-check read, is what makes racing webhook retries safe.
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("user_id", "budget_id", "category_id", "amount", "note",
			"transaction_date", "source", "twilio_message_id", "twilio_from").
		Values(tx.UserID, tx.BudgetID, tx.CategoryID, tx.Amount, tx.Note,
			tx.TransactionDate, tx.Source, tx.TwilioMessageID, tx.TwilioFrom).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&tx.ID, &tx.CreatedAt)
	return translateError(err)
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int, userID uuid.UUID) (*models.Transaction, error) {
	query := selectTransactions().
		Where(squirrel.Eq{"id": id, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(scanTargets(&tx)...)
	if err != nil {
		return nil, translateError(err)
	}

	return &tx, nil
}

// GetByMessageID looks a transaction up by its provider message SID.
// Used by the idempotency pre-check before parsing.
func (r *TransactionRepository) GetByMessageID(ctx context.Context, messageID string) (*models.Transaction, error) {
	query := selectTransactions().
		Where(squirrel.Eq{"twilio_message_id": messageID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(scanTargets(&tx)...)
	if err != nil {
		return nil, translateError(err)
	}

	return &tx, nil
}

func (r *TransactionRepository) ListByBudget(ctx context.Context, budgetID int, userID uuid.UUID) ([]*models.Transaction, error) {
	query := selectTransactions().
		Where(squirrel.Eq{"budget_id": budgetID, "user_id": userID}).
		OrderBy("transaction_date DESC, created_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(scanTargets(&tx)...); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

// UpdateCategory reassigns (or clears, with nil) a transaction's
// category. The only mutation transactions permit.
func (r *TransactionRepository) UpdateCategory(ctx context.Context, id int, userID uuid.UUID, categoryID *int) error {
	query := squirrel.Update("transactions").
		Set("category_id", categoryID).
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

func (r *TransactionRepository) Delete(ctx context.Context, id int, userID uuid.UUID) error {
	query := squirrel.Delete("transactions").
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

func selectTransactions() squirrel.SelectBuilder {
	return squirrel.Select("id", "user_id", "budget_id", "category_id", "amount",
		"note", "transaction_date", "source", "twilio_message_id", "twilio_from", "created_at").
		From("transactions").
		PlaceholderFormat(squirrel.Dollar)
}

func scanTargets(tx *models.Transaction) []any {
	return []any{
		&tx.ID, &tx.UserID, &tx.BudgetID, &tx.CategoryID, &tx.Amount,
		&tx.Note, &tx.TransactionDate, &tx.Source, &tx.TwilioMessageID, &tx.TwilioFrom, &tx.CreatedAt,
	}
}
