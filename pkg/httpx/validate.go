package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/taskapi/pkg/slogx"
	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// Normalizer is implemented by request bodies that clean their fields
// (trimming, email canonicalisation) before validation.
type Normalizer interface {
	Normalize()
}

// ValidateJSON decodes the request body into T, normalises it and validates
// it. Bodies that are not JSON or break a rule are answered with a 400 and
// next is never called. The accepted value is available to next through
// ValidatedBody.
func ValidateJSON[T any](v *validx.Validator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body T
			if err := DecodeJSON(w, r, &body); err != nil {
				slogx.FromContext(r.Context()).Debug("request body rejected", "err", err)
				WriteFailure(w, http.StatusBadRequest, "Invalid JSON in request body", "")
				return
			}

			if n, ok := any(&body).(Normalizer); ok {
				n.Normalize()
			}

			if err := v.Struct(&body); err != nil {
				var fieldErrs validx.Errors
				if errors.As(err, &fieldErrs) {
					WriteValidation(w, fieldErrs)
					return
				}
				slogx.FromContext(r.Context()).Error("validator failed", "err", err)
				WriteFailure(w, http.StatusInternalServerError, "Server error", "")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyBody, &body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ValidatedBody returns the body accepted by ValidateJSON[T].
func ValidatedBody[T any](ctx context.Context) (*T, bool) {
	b, ok := ctx.Value(ctxKeyBody).(*T)
	return b, ok
}

// DecodeJSON reads a single JSON value from the request body. An empty body
// decodes as an empty object.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
