package gormdb

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/errors"
)

func strPtr(s string) *string { return &s }

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{
		Username:     "ana",
		PasswordHash: "hash",
		Bio:          strPtr("cooks a lot"),
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", byID.Username)
	assert.Equal(t, "hash", byID.PasswordHash)
	assert.Nil(t, byID.ImageURL)
	require.NotNil(t, byID.Bio)
	assert.Equal(t, "cooks a lot", *byID.Bio)

	byName, err := repo.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "ana", PasswordHash: "h"}))

	_, err := repo.FindByUsername(ctx, "ANA")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "ana", PasswordHash: "h1"}))

	err := repo.Create(ctx, &entity.User{Username: "ana", PasswordHash: "h2"})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestUserRepository_EmptyUsernameRejectedByStore(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	err := repo.Create(ctx, &entity.User{Username: "", PasswordHash: "h"})
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
}

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_PostgresDuplicateKey(t *testing.T) {
	db, mock := newMockPostgres(t)
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate key value violates unique constraint"})

	err := NewUserRepository(db).Create(context.Background(), &entity.User{Username: "ana", PasswordHash: "h"})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_PostgresOtherError(t *testing.T) {
	db, mock := newMockPostgres(t)
	mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(errors.New("connection reset"))

	err := NewUserRepository(db).Create(context.Background(), &entity.User{Username: "ana", PasswordHash: "h"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeDatabaseExecute, appErr.ErrorCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}
