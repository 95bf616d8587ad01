package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/domain/validation"
	"cookbook/internal/errors"
	"cookbook/internal/usecase"
)

type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  params.TxManager,
		recipeRepo: params.RecipeRepo,
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *recipeService) ListRecipes(ctx context.Context, userID int64) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list recipes", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

func (srv *recipeService) CreateRecipe(ctx context.Context, userID int64, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	recipe := &entity.Recipe{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
		UserID:            userID,
	}

	if err := validation.Validate(recipe); err != nil {
		srv.log(ctx).Info("Recipe rejected", slog.Int64("userID", userID), slog.String("reason", err.Error()))

		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RecipeRepo().Create(ctx, recipe)
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Recipe owner no longer exists", slog.Int64("userID", userID))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "recipe owner no longer exists")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to execute create recipe transaction", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create recipe transaction")
	}

	srv.log(ctx).Debug("Recipe created", slog.Int64("recipeID", recipe.ID), slog.Int64("userID", userID))

	return recipe, nil
}
