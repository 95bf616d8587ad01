package gormdb

import (
	"context"

	"gorm.io/gorm"

	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/errors"
	"cookbook/internal/infra/persistence/model"
)

// recipeRepository implements repository.RecipeRepository using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists recipe. A missing owner yields repository.ErrUserNotFound.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) || isValueOutOfRange(err) {
			return domainerrors.ErrMalformedRequest.WrapMessage("recipe rejected by store constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// ListByUserID returns the recipes owned by userID ordered by ID.
func (repo *recipeRepository) ListByUserID(ctx context.Context, userID int64) ([]*entity.Recipe, error) {
	var recipeMs []*model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&recipeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for _, m := range recipeMs {
		recipes = append(recipes, toRecipeDomain(m))
	}

	return recipes, nil
}

func toRecipeDomain(m *model.RecipeModel) *entity.Recipe {
	return &entity.Recipe{
		ID:                m.ID,
		Title:             m.Title,
		Instructions:      m.Instructions,
		MinutesToComplete: m.MinutesToComplete,
		UserID:            m.UserID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromRecipeDomain(r *entity.Recipe) *model.RecipeModel {
	return &model.RecipeModel{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
