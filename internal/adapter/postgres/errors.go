package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/foodcatalog-backend/internal/domain"
)

// SQLSTATE codes that are client faults. A foreign key violation (23503) is
// deliberately absent: a missing category on write is reported as a server
// failure.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23514": domain.ErrValidation,    // check_violation (negative price or stock)
}

// MapError wraps a storage error with the entity it concerns and translates
// pgx.ErrNoRows and known SQLSTATE codes to domain sentinels. Context errors
// and everything else keep their original chain. An id of 0 means the row has
// no identifier yet.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != 0 {
		subject = fmt.Sprintf("%s %d", entity, id)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", subject, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := pgCodeErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s: %s: %w", subject, pgErr.ConstraintName, sentinel)
		}
	}

	return fmt.Errorf("%s: %w", subject, err)
}
