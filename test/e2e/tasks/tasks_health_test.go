package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	client := setupTaskContainer(t)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check includes the store.
func TestReadyzEndpoint(t *testing.T) {
	client := setupTaskContainer(t)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}

// TestWelcomeEndpoint verifies the root greeting.
func TestWelcomeEndpoint(t *testing.T) {
	client := setupTaskContainer(t)

	welcome, err := client.Welcome(t.Context())
	require.NoError(t, err)
	require.Equal(t, "Welcome to Task Management API", welcome.Message)
}
