// Package pgerr turns PostgreSQL constraint violations into domain errors.
package pgerr

import (
	"errors"

	"orderdelivery/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes from https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// Classify maps unique and foreign key violations to errs.ConflictError for
// param and value. Any other error is returned unchanged.
func Classify(err error, param string, value any) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case UniqueViolation, ForeignKeyViolation:
		return errs.NewConflictErrorWithCause(param, value, err)
	default:
		return err
	}
}

// IsUniqueViolation reports whether err is a unique constraint violation,
// optionally restricted to the named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
