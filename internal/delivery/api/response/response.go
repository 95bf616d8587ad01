// Package response defines the public JSON shapes of the API. Persistence
// details such as the password hash have no field here and cannot leak.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cookbook/internal/domain/entity"
)

// UserResponse is the outward representation of a user.
type UserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}

// RecipeResponse is the outward representation of a recipe.
type RecipeResponse struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
	UserID            int64  `json:"user_id"`
}

// ErrorResponse carries a single error message, e.g. {"error":"Unauthorized"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries validation messages, e.g. {"errors":["..."]}.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewUserResponse maps a user entity to its public shape.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
	}
}

// NewRecipeResponse maps a recipe entity to its public shape.
func NewRecipeResponse(r *entity.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID,
	}
}

// NewRecipeResponses maps recipes to a non-nil slice so empty lists encode as [].
func NewRecipeResponses(recipes []*entity.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, NewRecipeResponse(r))
	}

	return out
}

// Success writes data with the given status code.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes {"error": message}.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// ValidationErrors writes a 422 with the given messages.
func ValidationErrors(c echo.Context, messages ...string) error {
	return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: messages})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "Internal server error")
}
