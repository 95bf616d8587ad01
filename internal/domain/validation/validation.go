// Package validation runs the field rules declared on domain entities and
// input DTOs before anything is persisted.
package validation

import (
	"fmt"
	"sync"

	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/errors"

	"github.com/go-playground/validator/v10"
)

// messages maps "<Struct>.<Field>.<tag>" to the message reported to clients.
var messages = map[string]string{
	"User.Username.required":        "Username must be provided.",
	"SignupInput.Password.required": "Password must be provided.",
	"Recipe.Title.required":         "Title must be provided.",
	"Recipe.Instructions.min":       "Instructions must be at least 50 characters long.",
}

var (
	once     sync.Once
	instance *validator.Validate
)

// Engine returns the shared validator instance.
func Engine() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})

	return instance
}

// Validate checks v against its struct tags. The first violated rule is
// returned as a *domainerrors.ValidationError.
func Validate(v any) error {
	err := Engine().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "validate")
	}

	return toDomainError(fieldErrs[0])
}

func toDomainError(fe validator.FieldError) *domainerrors.ValidationError {
	key := fe.StructNamespace() + "." + fe.Tag()
	if msg, ok := messages[key]; ok {
		return domainerrors.NewValidationError(fe.Field(), msg)
	}

	return domainerrors.NewValidationError(fe.Field(), fmt.Sprintf("%s is invalid.", fe.Field()))
}
