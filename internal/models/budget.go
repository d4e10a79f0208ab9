package models

import (
	"time"

	"github.com/google/uuid"
)

// Budget is a monthly spending ceiling. Month is a "YYYY-MM" key; at
// most one budget exists per (user, month).
type Budget struct {
	ID          int       `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Month       string    `db:"month"`
	TotalBudget float64   `db:"total_budget"`
	CreatedAt   time.Time `db:"created_at"`
}
