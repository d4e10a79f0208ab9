package models

import (
	"time"

	"github.com/google/uuid"
)

// Category labels regular transactions. Names are unique per user
// case-insensitively; wants transactions are never categorized.
type Category struct {
	ID        int       `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}
