package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskapi/internal/tasks/domain"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store"
	"github.com/aussiebroadwan/taskapi/pkg/cryptox"
	"github.com/aussiebroadwan/taskapi/pkg/idx"
	"github.com/aussiebroadwan/taskapi/pkg/slogx"
	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

// AuthService registers users and exchanges credentials for session tokens.
type AuthService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Tokens *TokenService
	Now    func() time.Time
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a user and signs them in. Username and email must both
// be unused.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	username := strings.TrimSpace(in.Username)
	email := validx.NormalizeEmail(in.Email)

	taken, err := s.Store.Users().ExistsWithEmailOrUsername(ctx, email, username, "")
	if err != nil {
		return domain.User{}, "", fmt.Errorf("check existing user: %w", err)
	}
	if taken {
		return domain.User{}, "", ErrDuplicateUser
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	now := nowFrom(s.Now)
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrDuplicateUser
		}
		return domain.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	l.Info("user registered", "user_id", u.ID)
	return u, token, nil
}

// Login verifies email and password. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	l := slogx.FromContext(ctx)
	email = validx.NormalizeEmail(email)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = s.Hasher.VerifyDummy(password)
			l.Info("login failed", "reason", "unknown_email")
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("lookup user: %w", err)
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login failed", "reason", "bad_password", "user_id", u.ID)
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("verify password: %w", err)
	}

	token, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	l.Info("user logged in", "user_id", u.ID)
	return u, token, nil
}

func nowFrom(clock func() time.Time) time.Time {
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Truncate(time.Millisecond)
}
