package otelx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/taskapi/pkg/otelx"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name string
		cfg  otelx.Config
	}{
		{"disabled", otelx.Config{Enabled: false, Endpoint: "http://localhost:4318"}},
		{"no endpoint", otelx.Config{Enabled: true}},
		// Non-routable address so nothing is actually exported.
		{"enabled", otelx.Config{Enabled: true, Endpoint: "http://192.0.2.1:4318", Service: "tasks-test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := otelx.Setup(context.Background(), tt.cfg)
			require.NoError(t, err)
			require.NoError(t, shutdown(context.Background()))
		})
	}
}

func TestSetup_NoopShutdownIgnoresCancelledContext(t *testing.T) {
	shutdown, err := otelx.Setup(context.Background(), otelx.Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, shutdown(ctx))
}
