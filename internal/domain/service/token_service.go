package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// SessionTokenService signs and verifies the opaque token stored in the session cookie.
type SessionTokenService interface {
	// Issue creates a signed token binding userID until the configured TTL elapses.
	Issue(userID int64) (token string, expiresAt time.Time, err error)

	// Verify parses token and returns its claims if the signature and expiry are valid.
	Verify(token string) (*SessionClaims, error)

	// TTL returns how long issued tokens stay valid.
	TTL() time.Duration
}
