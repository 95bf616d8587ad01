// Package session binds HTTP clients to user identities through a signed cookie.
//
// A client is Anonymous until Login sets the cookie and Authenticated until
// Logout expires it. The resolved user ID travels in the request context.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"cookbook/config"
	deliverycontext "cookbook/internal/delivery/context"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/service"
)

// Manager issues, reads and clears session cookies.
type Manager struct {
	tokens     service.SessionTokenService
	cookieName string
	secure     bool
	sameSite   http.SameSite
}

// NewManager is the constructor for Manager.
func NewManager(cfg *config.Config, tokens service.SessionTokenService) *Manager {
	return &Manager{
		tokens:     tokens,
		cookieName: cfg.Session.CookieName,
		secure:     cfg.Session.Secure,
		sameSite:   parseSameSite(cfg.Session.SameSite),
	}
}

// Login binds the client to userID, replacing any previous session.
func (m *Manager) Login(c echo.Context, userID int64) error {
	token, expiresAt, err := m.tokens.Issue(userID)
	if err != nil {
		return err
	}

	c.SetCookie(m.newCookie(token, expiresAt, int(time.Until(expiresAt).Seconds())))
	m.bind(c, userID)

	return nil
}

// Logout ends the session. It fails with ErrUnauthorized when there is none.
func (m *Manager) Logout(c echo.Context) error {
	if _, ok := m.CurrentUserID(c); !ok {
		return domainerrors.ErrUnauthorized
	}

	m.Clear(c)

	return nil
}

// Clear expires the cookie whether or not a session was bound.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(m.newCookie("", time.Unix(0, 0), -1))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(c.Request().Context(), 0)))
}

// CurrentUserID returns the user bound to this request, if any.
func (m *Manager) CurrentUserID(c echo.Context) (int64, bool) {
	return deliverycontext.GetUserID(c.Request().Context())
}

// Resolve reads the session cookie and binds its user to the request.
// present reports whether a cookie was sent at all, valid or not.
func (m *Manager) Resolve(c echo.Context) (userID int64, present bool) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}

	claims, err := m.tokens.Verify(cookie.Value)
	if err != nil {
		return 0, true
	}

	m.bind(c, claims.UserID)

	return claims.UserID, true
}

func (m *Manager) bind(c echo.Context, userID int64) {
	c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(c.Request().Context(), userID)))
}

func (m *Manager) newCookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
