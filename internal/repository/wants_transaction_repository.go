package repository

import (
	"context"

	"smsledger/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type WantsTransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewWantsTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *WantsTransactionRepository {
	return &WantsTransactionRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a wants transaction. Shares the duplicate-message
// contract with TransactionRepository.Create: a repeated
// twilio_message_id returns ErrUniqueViolation.
func (r *WantsTransactionRepository) Create(ctx context.Context, tx *models.WantsTransaction) error {
	query := squirrel.Insert("wants_transactions").
		Columns("user_id", "wants_budget_id", "amount", "note",
			"transaction_date", "source", "twilio_message_id", "twilio_from").
		Values(tx.UserID, tx.WantsBudgetID, tx.Amount, tx.Note,
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

func (r *WantsTransactionRepository) GetByMessageID(ctx context.Context, messageID string) (*models.WantsTransaction, error) {
	query := selectWantsTransactions().
		Where(squirrel.Eq{"twilio_message_id": messageID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.WantsTransaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(wantsScanTargets(&tx)...)
	if err != nil {
		return nil, translateError(err)
	}

	return &tx, nil
}

func (r *WantsTransactionRepository) ListByBudget(ctx context.Context, wantsBudgetID int, userID uuid.UUID) ([]*models.WantsTransaction, error) {
	query := selectWantsTransactions().
		Where(squirrel.Eq{"wants_budget_id": wantsBudgetID, "user_id": userID}).
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

	var transactions []*models.WantsTransaction
	for rows.Next() {
		var tx models.WantsTransaction
		if err := rows.Scan(wantsScanTargets(&tx)...); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

func (r *WantsTransactionRepository) Delete(ctx context.Context, id int, userID uuid.UUID) error {
	query := squirrel.Delete("wants_transactions").
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

func selectWantsTransactions() squirrel.SelectBuilder {
	return squirrel.Select("id", "user_id", "wants_budget_id", "amount", "note",
		"transaction_date", "source", "twilio_message_id", "twilio_from", "created_at").
		From("wants_transactions").
		PlaceholderFormat(squirrel.Dollar)
}

func wantsScanTargets(tx *models.WantsTransaction) []any {
	return []any{
		&tx.ID, &tx.UserID, &tx.WantsBudgetID, &tx.Amount, &tx.Note,
		&tx.TransactionDate, &tx.Source, &tx.TwilioMessageID, &tx.TwilioFrom, &tx.CreatedAt,
	}
}
