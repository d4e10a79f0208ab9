package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrUniqueViolation is returned when an insert loses to an
	// existing row on a unique constraint. Callers decide whether that
	// means "conflict" (budget months) or "already processed" (webhook
	// message IDs).
	ErrUniqueViolation = errors.New("unique constraint violation")
)

// translateError maps driver-level errors onto the repository
// sentinels so services never inspect pgx internals.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrUniqueViolation
	}
	return err
}
