package tasks_test

import (
	"net/http"
	"testing"
)

// TestRateLimitLoginEndpoint verifies that /auth is rate limited.
// This endpoint has strict limits (5 req/min) to slow credential stuffing.
func TestRateLimitLoginEndpoint(t *testing.T) {
	client := setupTaskContainerWithDefaultRateLimits(t)
	ctx := t.Context()

	for range 5 {
		_, err := client.Login(ctx, "victim@example.com", "wrong-password")
		assertStatus(t, err, http.StatusUnauthorized, "attempt before the limit")
	}

	_, err := client.Login(ctx, "victim@example.com", "wrong-password")
	assertStatus(t, err, http.StatusTooManyRequests, "attempt over the limit")
}
