package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	require.Equal(t, "tasks.db", cfg.DatabaseFile)
	require.Equal(t, "tasks", cfg.MongoDatabase)
	require.Equal(t, uint(5), cfg.DBConnectAttempts)
	require.Equal(t, 5*time.Second, cfg.DBConnectDelay)
	require.Equal(t, 120*time.Hour, cfg.TokenTTL)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.False(t, cfg.ExposeErrorDetail)
	require.True(t, cfg.OTelEnabled)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("DB_CONNECT_DELAY", "250ms")
	t.Setenv("EXPOSE_ERROR_DETAIL", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, StoreDriverMongo, cfg.StoreDriver)
	require.Equal(t, "mongodb://db:27017", cfg.MongoURL)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 250*time.Millisecond, cfg.DBConnectDelay)
	require.True(t, cfg.ExposeErrorDetail)
	require.False(t, cfg.IsDev())
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Setenv("PORT", "eighty")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Env:               "dev",
			Port:              8080,
			StoreDriver:       StoreDriverSQLite,
			DatabaseFile:      "tasks.db",
			DBConnectAttempts: 1,
			TokenTTL:          time.Hour,
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown driver", func(c *Config) { c.StoreDriver = "postgres" }, "STORE_DRIVER"},
		{"mongo without url", func(c *Config) { c.StoreDriver = StoreDriverMongo }, "MONGO_URL"},
		{"secret outside dev", func(c *Config) { c.Env = "prod" }, "JWT_SECRET"},
		{"port out of range", func(c *Config) { c.Port = 70000 }, "PORT"},
		{"zero attempts", func(c *Config) { c.DBConnectAttempts = 0 }, "DB_CONNECT_ATTEMPTS"},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }, "TOKEN_TTL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}
