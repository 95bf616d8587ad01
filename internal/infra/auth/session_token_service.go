package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cookbook/config"
	"cookbook/internal/domain/service"
	"cookbook/internal/errors"
)

const sessionIssuer = "cookbook"

// ErrInvalidSessionToken is returned for tokens that fail signature, expiry or claim checks.
var ErrInvalidSessionToken = errors.New("invalid session token")

// sessionTokenService signs session cookies as HS256 JWTs.
type sessionTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}
	if cfg.Session.MaxAge <= 0 {
		return nil, errors.New("session max age must be positive")
	}

	return &sessionTokenService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.MaxAge,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token for userID.
func (s *sessionTokenService) Issue(userID int64) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := service.SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}

	return signed, expiresAt, nil
}

// Verify checks the signature and expiry of token.
func (s *sessionTokenService) Verify(token string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSessionToken, err.Error())
	}
	if !parsed.Valid || claims.UserID <= 0 {
		return nil, ErrInvalidSessionToken
	}

	return claims, nil
}

// TTL returns the lifetime of issued tokens.
func (s *sessionTokenService) TTL() time.Duration {
	return s.ttl
}
