// Package validator adapts the shared go-playground validator to echo.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"cookbook/internal/domain/validation"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator backed by the domain validation engine.
func New() echo.Validator {
	return &CustomValidator{validate: validation.Engine()}
}

// Validate checks the struct tags on a bound request.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
