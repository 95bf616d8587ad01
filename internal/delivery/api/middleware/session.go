package middleware

import (
	"github.com/labstack/echo/v4"

	"cookbook/internal/delivery/api/session"
	domainerrors "cookbook/internal/domain/errors"
)

// SessionMiddleware resolves the session cookie and guards authenticated routes.
type SessionMiddleware struct {
	sessions *session.Manager
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Resolve binds the cookie's user to the request. A cookie that fails
// verification is expired and the request continues anonymously.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, present := m.sessions.Resolve(c); present {
			if _, ok := m.sessions.CurrentUserID(c); !ok {
				m.sessions.Clear(c)
			}
		}

		return next(c)
	}
}

// RequireSession rejects anonymous requests with 401.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.sessions.CurrentUserID(c); !ok {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}
