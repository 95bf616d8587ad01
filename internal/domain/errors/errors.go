// Package errors defines the application errors surfaced by the domain and
// usecase layers. Each error knows which HTTP status it maps to.
package errors

import (
	"net/http"

	"cookbook/internal/errors"
)

// Error codes shared between the domain and the delivery layer.
const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeUsernameTaken      = "USERNAME_ALREADY_EXISTS"
	CodeMalformedRequest   = "MALFORMED_REQUEST"
	CodeInternal           = "INTERNAL_ERROR"
	CodeDatabaseExecute    = "DATABASE_EXECUTE_FAILED"
)

// AppError is an error that knows how it is presented to a client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	// Message is safe to show to clients.
	Message() string
	// Details is for logs only.
	Details() string
}

// BaseError is a fixed-message AppError used for sentinels. Compare with
// errors.Is; wrapping keeps the identity.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

func newBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return "" }

// WrapMessage annotates the sentinel with context for logs. The client still
// sees Message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

var (
	// ErrUnauthorized: no valid session, or the session's user is gone.
	ErrUnauthorized = newBaseError(http.StatusUnauthorized, CodeUnauthorized, "Unauthorized")

	// ErrInvalidCredentials renders exactly like ErrUnauthorized so a client
	// cannot tell an unknown username from a wrong password.
	ErrInvalidCredentials = newBaseError(http.StatusUnauthorized, CodeInvalidCredentials, "Unauthorized")

	ErrUsernameTaken = newBaseError(http.StatusUnprocessableEntity, CodeUsernameTaken, "Username already exists.")

	ErrPasswordHashFailed = newBaseError(http.StatusInternalServerError, CodeInternal, "Password could not be processed.")

	// ErrMalformedRequest is the generic 422 for bodies that cannot be decoded
	// and for every recipe validation failure.
	ErrMalformedRequest = newBaseError(http.StatusUnprocessableEntity, CodeMalformedRequest, "validation errors")
)

// ValidationError reports a single field rule violation.
type ValidationError struct {
	Field string
	Msg   string
}

// NewValidationError creates a validation error for field with a user-facing message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Msg: message}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return CodeValidationFailed
}

// Message returns the user-facing error message
func (e *ValidationError) Message() string {
	return e.Msg
}

// Details returns the offending field name
func (e *ValidationError) Details() string {
	return e.Field
}

// IsValidation reports whether err carries a field validation failure.
func IsValidation(err error) bool {
	var vErr *ValidationError

	return errors.As(err, &vErr)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeDatabaseExecute
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
