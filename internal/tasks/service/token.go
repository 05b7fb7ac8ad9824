package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskapi/pkg/jwtx"
)

// TokenService issues and validates session tokens.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	TTL      time.Duration
	Now      func() time.Time
}

// NewTokenService builds an HS256 token service around secret.
func NewTokenService(secret []byte, ttl time.Duration) (*TokenService, error) {
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtx.NewVerifierHS256(secret)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	return &TokenService{Signer: signer, Verifier: verifier, TTL: ttl, Now: time.Now}, nil
}

// Issue signs a session token for userID.
func (s *TokenService) Issue(userID string) (string, error) {
	token, err := s.Signer.Sign(jwtx.NewSessionClaims(userID, s.TTL, s.now()))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Validate returns the user id carried by a valid, unexpired token.
func (s *TokenService) Validate(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrTokenMissing
	}

	claims, err := s.Verifier.Verify(token)
	switch {
	case err == nil:
		return claims.UserID, nil
	case errors.Is(err, jwtx.ErrMalformed):
		return "", fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	case errors.Is(err, jwtx.ErrExpired):
		return "", fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
}

func (s *TokenService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
