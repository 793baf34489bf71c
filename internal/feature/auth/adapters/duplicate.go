// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// isDuplicateKey reports whether err is a unique-constraint violation.
// GORM translates most driver errors to gorm.ErrDuplicatedKey; the pgconn
// check covers raw pgx errors that bypass the translator.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
