package repository

import (
	"context"

	"cookbook/internal/domain/entity"
)

// RecipeRepository defines the persistence operations for recipes.
type RecipeRepository interface {
	// Create persists a new recipe. The owner must already exist.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// ListByUserID returns every recipe owned by userID, oldest first.
	ListByUserID(ctx context.Context, userID int64) ([]*entity.Recipe, error)
}
