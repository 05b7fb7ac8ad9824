package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskapi/internal/tasks/domain"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store"
	"github.com/aussiebroadwan/taskapi/pkg/idx"
	"github.com/aussiebroadwan/taskapi/pkg/slogx"
	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

type UserService struct {
	Store     store.Store
	Validator *validx.Validator
	Now       func() time.Time
}

// UserUpdate carries the raw profile fields of an update request. Nil and
// empty values are ignored.
type UserUpdate struct {
	Username *string
	Email    *string
}

type userFields struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"useremail" validate:"omitempty,email"`
}

func (userFields) ValidationMessages() map[string]string {
	return map[string]string{
		"username.min":    "Username must be at least 3 characters",
		"useremail.email": "Please enter a valid email",
	}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	userID, err := idx.Parse(id)
	if err != nil {
		return domain.User{}, ErrInvalidUserID
	}
	u, err := s.Store.Users().GetUserByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Update changes username and/or email. New values are normalised and must
// not collide with another user.
func (s *UserService) Update(ctx context.Context, id string, in UserUpdate) (domain.User, error) {
	userID, err := idx.Parse(id)
	if err != nil {
		return domain.User{}, ErrInvalidUserID
	}
	id = userID.String()

	var patch domain.UserPatch
	if in.Username != nil && strings.TrimSpace(*in.Username) != "" {
		v := strings.TrimSpace(*in.Username)
		patch.Username = &v
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		v := validx.NormalizeEmail(*in.Email)
		patch.Email = &v
	}
	if patch.IsEmpty() {
		return domain.User{}, ErrNoUpdateFields
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.Validator.Struct(userFields{Username: patch.Username, Email: patch.Email}); err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	username, email := current.Username, current.Email
	if patch.Username != nil {
		username = *patch.Username
	}
	if patch.Email != nil {
		email = *patch.Email
	}
	taken, err := s.Store.Users().ExistsWithEmailOrUsername(ctx, email, username, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("check existing user: %w", err)
	}
	if taken {
		return domain.User{}, ErrDuplicateUserProfile
	}

	patch.UpdatedAt = nowFrom(s.Now)
	u, err := s.Store.Users().UpdateProfile(ctx, id, patch)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, ErrDuplicateUserProfile
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, ErrUserNotFound
	default:
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}

	slogx.FromContext(ctx).Info("user profile updated", "target_user_id", id)
	return u, nil
}
