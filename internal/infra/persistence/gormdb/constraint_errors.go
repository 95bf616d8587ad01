package gormdb

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cookbook/internal/errors"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"

	pgStringDataRightTruncation = "22001"
	pgNumericValueOutOfRange    = "22003"
)

// Helper functions for constraint error checking. GORM translates most driver
// errors already; the message and SQLSTATE checks cover the ones it leaves alone.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasPgCode(err, pgUniqueViolation) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasPgCode(err, pgForeignKeyViolation) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	return hasPgCode(err, pgNotNullViolation) ||
		strings.Contains(err.Error(), "NOT NULL constraint failed")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasPgCode(err, pgCheckViolation) ||
		strings.Contains(err.Error(), "CHECK constraint failed")
}

// isValueOutOfRange reports a value the column type cannot hold, such as an
// overlong string or an integer past the column's width.
func isValueOutOfRange(err error) bool {
	return hasPgCode(err, pgStringDataRightTruncation) ||
		hasPgCode(err, pgNumericValueOutOfRange)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}
