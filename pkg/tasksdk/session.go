package tasksdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// Session is an authenticated client bound to one user's bearer token.
// Tokens are not refreshed; log in again once one expires.
type Session struct {
	client *SDKClient
	userID string
	token  string
}

// UserID returns the id of the authenticated user.
func (s *Session) UserID() string { return s.userID }

// Token returns the bearer token.
func (s *Session) Token() string { return s.token }

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	if s.token == "" {
		return nil, errors.New("session has no token")
	}
	return s.client.doRequest(ctx, method, path, body, s.token)
}

func userPath(id string) string { return "/users/" + url.PathEscape(id) }
func taskPath(id string) string { return "/tasks/" + url.PathEscape(id) }
