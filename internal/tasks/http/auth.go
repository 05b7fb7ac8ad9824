package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskapi/internal/tasks/service"
	"github.com/aussiebroadwan/taskapi/pkg/httpx"
	"github.com/aussiebroadwan/taskapi/pkg/tasksdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
	errs        errorWriter
}

// Login exchanges email and password for a bearer token.
//
//	@Summary		Log in
//	@Description	Verifies the email and password and returns a bearer token valid for five days.
//	@Description	Unknown emails and wrong passwords get the same response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.LoginRequest							true	"Credentials"
//	@Success		200		{object}	tasksdk.Response[tasksdk.AuthResponse]			"User and token"
//	@Failure		400		{object}	tasksdk.Response[any]							"Validation errors"
//	@Failure		401		{object}	tasksdk.Response[any]							"Invalid username or password"
//	@Failure		429		{object}	tasksdk.Response[any]							"Too many attempts"
//	@Failure		500		{object}	tasksdk.Response[any]							"Server error"
//	@Router			/auth [post].
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := httpx.ValidatedBody[tasksdk.LoginRequest](r.Context())
	if !ok {
		httpx.WriteFailure(w, http.StatusBadRequest, "Invalid JSON in request body", "")
		return
	}

	u, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, toAuthResponse(u, token))
}

// Register creates an account and signs it in.
//
//	@Summary		Register a user
//	@Description	Creates a user with a unique username and email and returns a bearer token.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.RegisterRequest						true	"New user"
//	@Success		201		{object}	tasksdk.Response[tasksdk.AuthResponse]		"User and token"
//	@Failure		400		{object}	tasksdk.Response[any]						"Validation errors or user already exists"
//	@Failure		429		{object}	tasksdk.Response[any]						"Too many requests"
//	@Failure		500		{object}	tasksdk.Response[any]						"Server error"
//	@Router			/users [post].
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := httpx.ValidatedBody[tasksdk.RegisterRequest](r.Context())
	if !ok {
		httpx.WriteFailure(w, http.StatusBadRequest, "Invalid JSON in request body", "")
		return
	}

	u, token, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusCreated, toAuthResponse(u, token))
}
