package tasksdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a failed envelope returned by the service.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Message is the human-readable failure message (e.g. "Task not found with this ID")
	Message string

	// Detail is the underlying error, only sent when the server exposes it
	Detail string

	// Errors lists rejected fields for validation failures
	Errors []FieldError
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d: %s (%s)", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// FieldMessage returns the validation message for field, if any.
func (e *APIError) FieldMessage(field string) (string, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not an
// *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }

// IsUnauthorized reports whether err is a 401 from the service.
func IsUnauthorized(err error) bool { return StatusCode(err) == http.StatusUnauthorized }

// IsBadRequest reports whether err is a 400 from the service.
func IsBadRequest(err error) bool { return StatusCode(err) == http.StatusBadRequest }

// parseErrorResponse turns a non-2xx response into an *APIError. Bodies that
// are not an envelope fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var env Response[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Detail:     env.Error,
			Errors:     env.Errors,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
