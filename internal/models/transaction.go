package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionSource string

const (
	SourceSMS    TransactionSource = "sms"
	SourceManual TransactionSource = "manual"
)

// Transaction is a single expense against a monthly budget. CategoryID
// and Note are genuinely optional; TwilioMessageID is set only for the
// SMS source and is unique across all rows, which is what makes webhook
// retries idempotent.
type Transaction struct {
	ID              int               `db:"id"`
	UserID          uuid.UUID         `db:"user_id"`
	BudgetID        int               `db:"budget_id"`
	CategoryID      *int              `db:"category_id"`
	Amount          float64           `db:"amount"`
	Note            *string           `db:"note"`
	TransactionDate time.Time         `db:"transaction_date"`
	Source          TransactionSource `db:"source"`
	TwilioMessageID *string           `db:"twilio_message_id"`
	TwilioFrom      *string           `db:"twilio_from"`
	CreatedAt       time.Time         `db:"created_at"`
}
