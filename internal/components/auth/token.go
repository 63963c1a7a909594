package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"andrasnagy-data/taskboard/internal/shared/config"
)

type (
	// TokenManager mints and verifies HS256 access tokens. The signing secret
	// and token lifetime are fixed at construction; the same instance is used
	// for the whole process.
	TokenManager struct {
		secret []byte
		ttl    time.Duration
	}
)

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.JWTTTL,
	}
}

// Issue creates a signed token carrying the username as subject, expiring
// after the configured TTL.
func (m *TokenManager) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
	})

	return token.SignedString(m.secret)
}

// Verify returns the subject of a valid token. Every failure mode (bad
// signature, malformed token, missing subject, elapsed expiry) collapses
// to ErrInvalidToken so callers cannot leak why verification failed.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
