// Package repositories implements the record store over a pgx connection
// pool. Queries exclude soft-deleted rows unless stated otherwise.
package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "project-catalog/internal/errors"
)

// uniqueViolation is the SQLSTATE for unique-constraint failures.
const uniqueViolation = "23505"

// translateError converts constraint violations raised inside the race
// window between a service pre-check and the insert into the same Conflict
// the pre-check would have produced.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.Conflict("unique constraint violated: %s", pgErr.ConstraintName)
	}
	return err
}
