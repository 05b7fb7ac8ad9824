package tasksdk

import (
	"context"
	"net/http"
)

// ListUsers returns every user.
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := s.do(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]User](resp, http.StatusOK)
}

// GetUser returns the user with the given id.
func (s *Session) GetUser(ctx context.Context, id string) (*User, error) {
	resp, err := s.do(ctx, http.MethodGet, userPath(id), nil)
	if err != nil {
		return nil, err
	}
	u, err := decodeData[User](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetMe returns the authenticated user.
func (s *Session) GetMe(ctx context.Context) (*User, error) {
	return s.GetUser(ctx, s.userID)
}

// UpdateUser changes a user's username and/or email.
func (s *Session) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	resp, err := s.do(ctx, http.MethodPut, userPath(id), req)
	if err != nil {
		return nil, err
	}
	u, err := decodeData[User](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
