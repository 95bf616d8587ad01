// Package repository declares the persistence contracts the usecases depend on.
package repository

import (
	"context"

	"cookbook/internal/domain/entity"
	"cookbook/internal/errors"
)

// ErrUserNotFound reports that no user row matched the lookup, or that a
// recipe's owner row is gone.
var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	// FindByID returns ErrUserNotFound when id has no row.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername matches the username exactly, case included.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create assigns user.ID. A taken username yields domainerrors.ErrUsernameTaken.
	Create(ctx context.Context, user *entity.User) error
}
