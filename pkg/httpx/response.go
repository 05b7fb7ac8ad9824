package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool                `json:"success"`
	Count   *int                `json:"count,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  []validx.FieldError `json:"errors,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// WriteData writes a successful envelope carrying data.
func WriteData(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, Response{Success: true, Data: data})
}

// WriteList writes a successful envelope carrying a list and its length.
func WriteList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	WriteJSON(w, http.StatusOK, Response{Success: true, Count: &n, Data: items})
}

// WriteMessage writes a successful envelope with only a message.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, Response{Success: true, Message: msg})
}

// WriteFailure writes a failed envelope. detail is only included when non-empty.
func WriteFailure(w http.ResponseWriter, code int, msg, detail string) {
	WriteJSON(w, code, Response{Success: false, Message: msg, Error: detail})
}

// WriteValidation writes the 400 envelope for field-level violations.
func WriteValidation(w http.ResponseWriter, errs validx.Errors) {
	WriteJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation errors",
		Errors:  errs,
	})
}
