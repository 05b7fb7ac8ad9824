package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskapi/internal/tasks/service"
	"github.com/aussiebroadwan/taskapi/pkg/httpx"
	"github.com/aussiebroadwan/taskapi/pkg/slogx"
	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

type errorMapping struct {
	err  error
	code int
	msg  string
}

// Most specific first: the invalid-id and duplicate sentinels wrap a
// shared parent.
var errorMappings = []errorMapping{
	{service.ErrInvalidTaskID, http.StatusBadRequest, "Invalid task ID format"},
	{service.ErrInvalidUserID, http.StatusBadRequest, "Invalid user ID format"},
	{service.ErrInvalidAssigneeID, http.StatusBadRequest, "Invalid assigned user ID format"},
	{service.ErrTaskNotFound, http.StatusNotFound, "Task not found with this ID"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found with this ID"},
	{service.ErrAssigneeNotFound, http.StatusNotFound, "Assigned user not found"},
	{service.ErrMissingTaskFields, http.StatusBadRequest, "All fields are required: title, description, dueDate, assignedUser"},
	{service.ErrInvalidStatus, http.StatusBadRequest, "Status must be one of: 'pending', 'in-progress', 'completed'"},
	{service.ErrNoUpdateFields, http.StatusBadRequest, "No valid fields to update provided"},
	{service.ErrDuplicateUserProfile, http.StatusBadRequest, "Email or username already exists"},
	{service.ErrDuplicateUser, http.StatusBadRequest, "User already exists with this email or username"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
	{service.ErrInvalidPatch, http.StatusBadRequest, "Validation errors"},
}

// errorWriter turns service errors into failure envelopes.
type errorWriter struct {
	exposeDetail bool
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validx.Errors
	if errors.As(err, &fieldErrs) {
		httpx.WriteValidation(w, fieldErrs)
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			httpx.WriteFailure(w, m.code, m.msg, "")
			return
		}
	}

	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	detail := ""
	if e.exposeDetail {
		detail = err.Error()
	}
	httpx.WriteFailure(w, http.StatusInternalServerError, "Server error", detail)
}
