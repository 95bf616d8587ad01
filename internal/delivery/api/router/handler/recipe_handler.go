package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"cookbook/internal/delivery/api/response"
	"cookbook/internal/delivery/api/session"
	deliverycontext "cookbook/internal/delivery/context"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/errors"
	"cookbook/internal/usecase"
)

type createRecipeRequest struct {
	Title             string `json:"title" validate:"required"`
	Instructions      string `json:"instructions" validate:"required"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

// RecipeHandler serves the caller's recipes. Routes sit behind RequireSession.
type RecipeHandler struct {
	uc       usecase.RecipeUsecase
	sessions *session.Manager
	logger   *slog.Logger
}

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUsecase usecase.RecipeUsecase
	Sessions      *session.Manager
	Logger        *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		uc:       params.RecipeUsecase,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

// List returns every recipe owned by the caller.
func (h *RecipeHandler) List(c echo.Context) error {
	userID, ok := h.sessions.CurrentUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	recipes, err := h.uc.ListRecipes(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewRecipeResponses(recipes))
}

// Create stores a recipe for the caller. Every validation failure is reported
// with the same generic message; the specific reason is only logged.
func (h *RecipeHandler) Create(c echo.Context) error {
	userID, ok := h.sessions.CurrentUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req createRecipeRequest
	if err := c.Bind(&req); err != nil {
		return h.rejected(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return h.rejected(c, err)
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), userID, &usecase.CreateRecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		if domainerrors.IsValidation(err) || errors.Is(err, domainerrors.ErrMalformedRequest) {
			return h.rejected(c, err)
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) rejected(c echo.Context, cause error) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("Recipe request rejected", slog.String("reason", cause.Error()))

	return domainerrors.ErrMalformedRequest
}
