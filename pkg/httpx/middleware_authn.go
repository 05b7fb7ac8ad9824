package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/taskapi/pkg/slogx"
)

// TokenValidator resolves a raw bearer token to the user id it was issued for.
type TokenValidator interface {
	Validate(token string) (userID string, err error)
}

// AuthnMiddleware rejects requests without a valid bearer token. Accepted
// requests carry the user id in their context and logger.
func AuthnMiddleware(v TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r)
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			userID, err := v.Validate(raw)
			if err != nil {
				log.Warn("token rejected", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = WithUserID(ctx, userID)
			ctx = slogx.With(ctx, "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(authz, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RFC 6750-compliant challenge with the standard envelope as body.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteFailure(w, http.StatusUnauthorized, "Not authorized", "")
}
