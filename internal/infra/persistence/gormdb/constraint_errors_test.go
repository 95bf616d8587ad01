package gormdb

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"cookbook/internal/errors"
)

func TestConstraintViolationHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
		outOfRange bool
	}{
		{name: "gorm duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), unique: true},
		{name: "pg unique", err: &pgconn.PgError{Code: pgUniqueViolation}, unique: true},
		{name: "sqlite unique", err: errors.New("UNIQUE constraint failed: users.username"), unique: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "pg foreign key", err: errors.Wrap(&pgconn.PgError{Code: pgForeignKeyViolation}, "insert"), foreignKey: true},
		{name: "sqlite foreign key", err: errors.New("FOREIGN KEY constraint failed"), foreignKey: true},
		{name: "pg not null", err: &pgconn.PgError{Code: pgNotNullViolation}, notNull: true},
		{name: "sqlite not null", err: errors.New("NOT NULL constraint failed: recipes.title"), notNull: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "pg check", err: &pgconn.PgError{Code: pgCheckViolation}, check: true},
		{name: "sqlite check", err: errors.New("CHECK constraint failed: length(instructions) >= 50"), check: true},
		{name: "pg string too long", err: &pgconn.PgError{Code: pgStringDataRightTruncation}, outOfRange: true},
		{name: "pg numeric out of range", err: errors.Wrap(&pgconn.PgError{Code: pgNumericValueOutOfRange}, "insert"), outOfRange: true},
		{name: "other", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
			assert.Equal(t, tt.outOfRange, isValueOutOfRange(tt.err))
		})
	}
}
