// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cookbook/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Username string
	Password string `validate:"required"`
	ImageURL *string
	Bio      *string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Signup validates input, stores a new user with a hashed password and returns it.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Login returns the user whose credentials match, or ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// GetUser loads the user bound to a session.
	GetUser(ctx context.Context, userID int64) (*entity.User, error)
}
