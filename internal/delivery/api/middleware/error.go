package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"cookbook/internal/delivery/api/response"
	deliverycontext "cookbook/internal/delivery/context"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeStatus(c, err, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		m.writeStatus(c, err, httpErr.Code, message)

		return
	}

	m.writeStatus(c, err, http.StatusInternalServerError, "")
}

func (m *ErrorMiddleware) writeStatus(c echo.Context, err error, status int, message string) {
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	switch {
	case status == http.StatusUnauthorized:
		_ = response.Unauthorized(c)
	case status == http.StatusUnprocessableEntity:
		_ = response.ValidationErrors(c, message)
	case status >= http.StatusInternalServerError:
		// Internal details stay in the log.
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
		_ = response.InternalServerError(c)
	default:
		_ = response.Error(c, status, message)
	}
}
