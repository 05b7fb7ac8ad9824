package tasksdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the task API. It provides access to the public
// endpoints and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new task API client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account and returns it together with a bearer token.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/users", req, "")
	if err != nil {
		return nil, err
	}
	out, err := decodeData[AuthResponse](resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges email and password for a bearer token.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth", LoginRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}
	out, err := decodeData[AuthResponse](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AuthenticateWithPassword logs in and returns a Session for the user.
func (c *SDKClient) AuthenticateWithPassword(ctx context.Context, email, password string) (*Session, error) {
	auth, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.NewSession(auth.ID, auth.Token), nil
}

// RegisterAndAuthenticate registers an account and returns a Session for it.
func (c *SDKClient) RegisterAndAuthenticate(ctx context.Context, req RegisterRequest) (*Session, error) {
	auth, err := c.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return c.NewSession(auth.ID, auth.Token), nil
}

// NewSession creates a Session from an existing bearer token.
func (c *SDKClient) NewSession(userID, token string) *Session {
	return &Session{client: c, userID: userID, token: token}
}

// Welcome calls GET /.
func (c *SDKClient) Welcome(ctx context.Context) (*WelcomeResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/", nil, "")
	if err != nil {
		return nil, err
	}
	var out WelcomeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
