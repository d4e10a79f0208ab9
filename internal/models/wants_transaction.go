package models

import (
	"time"

	"github.com/google/uuid"
)

// WantsTransaction mirrors Transaction for the discretionary track.
// It has no category and attaches to a semi-annual wants budget.
type WantsTransaction struct {
	ID              int               `db:"id"`
	UserID          uuid.UUID         `db:"user_id"`
	WantsBudgetID   int               `db:"wants_budget_id"`
	Amount          float64           `db:"amount"`
	Note            *string           `db:"note"`
	TransactionDate time.Time         `db:"transaction_date"`
	Source          TransactionSource `db:"source"`
	TwilioMessageID *string           `db:"twilio_message_id"`
	TwilioFrom      *string           `db:"twilio_from"`
	CreatedAt       time.Time         `db:"created_at"`
}
