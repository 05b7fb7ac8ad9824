package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskapi/internal/tasks/service"
	"github.com/aussiebroadwan/taskapi/pkg/httpx"
	"github.com/aussiebroadwan/taskapi/pkg/tasksdk"
)

type UsersHandler struct {
	UserService *service.UserService
	errs        errorWriter
}

// List returns every user.
//
//	@Summary		List users
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.Response[[]tasksdk.User]	"Users and count"
//	@Failure		401	{object}	tasksdk.Response[any]				"Not authorized"
//	@Failure		500	{object}	tasksdk.Response[any]				"Server error"
//	@Router			/users [get].
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteList(w, toUsers(users))
}

// Get returns one user.
//
//	@Summary		Get a user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string							true	"User ID"
//	@Success		200	{object}	tasksdk.Response[tasksdk.User]	"User"
//	@Failure		400	{object}	tasksdk.Response[any]			"Invalid user ID format"
//	@Failure		401	{object}	tasksdk.Response[any]			"Not authorized"
//	@Failure		404	{object}	tasksdk.Response[any]			"User not found"
//	@Failure		500	{object}	tasksdk.Response[any]			"Server error"
//	@Router			/users/{id} [get].
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toUser(u))
}

// Update changes a user's username and/or email.
//
//	@Summary		Update a user
//	@Description	Only username and useremail can change. Both must stay unique across users.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"User ID"
//	@Param			request	body		tasksdk.UpdateUserRequest		true	"Fields to change"
//	@Success		200		{object}	tasksdk.Response[tasksdk.User]	"Updated user"
//	@Failure		400		{object}	tasksdk.Response[any]			"Invalid input or duplicate"
//	@Failure		401		{object}	tasksdk.Response[any]			"Not authorized"
//	@Failure		404		{object}	tasksdk.Response[any]			"User not found"
//	@Failure		500		{object}	tasksdk.Response[any]			"Server error"
//	@Router			/users/{id} [put].
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.UpdateUserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		// A bad id or missing user outranks a bad body.
		if _, err := h.UserService.Get(r.Context(), r.PathValue("id")); err != nil {
			h.errs.write(w, r, err)
			return
		}
		httpx.WriteFailure(w, http.StatusBadRequest, "Invalid JSON in request body", "")
		return
	}

	u, err := h.UserService.Update(r.Context(), r.PathValue("id"), service.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toUser(u))
}
