package usecase

import (
	"context"

	"cookbook/internal/domain/entity"
)

// CreateRecipeInput defines the client-supplied fields of a new recipe.
// The owner always comes from the session, never from the request.
type CreateRecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete *int
}

// RecipeUsecase defines the recipe operations available to an authenticated user.
type RecipeUsecase interface {
	// ListRecipes returns every recipe owned by userID.
	ListRecipes(ctx context.Context, userID int64) ([]*entity.Recipe, error)

	// CreateRecipe validates input and stores it as a recipe owned by userID.
	CreateRecipe(ctx context.Context, userID int64, input *CreateRecipeInput) (*entity.Recipe, error)
}
