package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the lifetime of a session token issued on login or
// registration.
const DefaultSessionTTL = 5 * 24 * time.Hour

// Claims are the session-token claims. The payload deliberately carries
// nothing but the user identifier and the timing claims.
type Claims struct {
	// UserID of the authenticated user.
	UserID string `json:"id"`

	jwt.RegisteredClaims
}

// NewSessionClaims builds claims for userID valid from now for ttl.
func NewSessionClaims(userID string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// ExpiresIn returns how long the claims remain valid relative to now.
func (c Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}
