// Package handler contains the HTTP handlers for the application.
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
	"cookbook/internal/infra/metrics"
	"cookbook/internal/usecase"
)

type signupRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthHandler serves signup, login, logout and session checks.
type AuthHandler struct {
	uc       usecase.UserUsecase
	sessions *session.Manager
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUsecase usecase.UserUsecase
	Sessions    *session.Manager
	Metrics     *metrics.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:       params.UserUsecase,
		sessions: params.Sessions,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// Signup creates an account and starts a session for it.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithMessage(domainerrors.ErrMalformedRequest, err.Error())
	}

	user, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: req.Username,
		Password: req.Password,
		ImageURL: req.ImageURL,
		Bio:      req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessions.Login(c, user.ID); err != nil {
		return errors.Wrap(err, "bind session after signup")
	}
	h.metrics.AuthEvent(metrics.EventSignup)

	return response.Success(c, http.StatusCreated, response.NewUserResponse(user))
}

// Login verifies credentials and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		h.metrics.AuthEvent(metrics.EventLoginFailed)

		return errors.WithMessage(domainerrors.ErrInvalidCredentials, err.Error())
	}

	user, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			h.metrics.AuthEvent(metrics.EventLoginFailed)
		}

		return errors.WithStack(err)
	}

	if err := h.sessions.Login(c, user.ID); err != nil {
		return errors.Wrap(err, "bind session after login")
	}
	h.metrics.AuthEvent(metrics.EventLogin)

	return response.Success(c, http.StatusOK, response.NewUserResponse(user))
}

// CheckSession returns the user bound to the session. A session whose user
// has disappeared is cleared.
func (h *AuthHandler) CheckSession(c echo.Context) error {
	userID, ok := h.sessions.CurrentUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			h.sessions.Clear(c)
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewUserResponse(user))
}

// Logout ends the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, _ := h.sessions.CurrentUserID(c)
	if err := h.sessions.Logout(c); err != nil {
		return err
	}
	h.metrics.AuthEvent(metrics.EventLogout)
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Debug("Session ended", slog.Int64("userID", userID))

	return c.NoContent(http.StatusNoContent)
}
