package models

import (
	"time"

	"github.com/google/uuid"
)

// WantsBudget is a semi-annual discretionary ceiling covering either
// Jan 1–Jun 30 or Jul 1–Dec 31. At most one exists per (user,
// period_start).
type WantsBudget struct {
	ID          int       `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	PeriodStart time.Time `db:"period_start"`
	PeriodEnd   time.Time `db:"period_end"`
	TotalAmount float64   `db:"total_amount"`
	CreatedAt   time.Time `db:"created_at"`
}
