package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "data", cfg.Store.Dir)
	require.Equal(t, "events.json", cfg.Store.File)
	require.Equal(t, "development", cfg.Environment)
	require.True(t, cfg.CORS.AllowAllOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_DIR", "/tmp/venuebook")
	t.Setenv("RATE_LIMIT_WRITE", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.venuebook.dev, https://app.venuebook.dev")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/venuebook", cfg.Store.Dir)
	require.Equal(t, 10, cfg.RateLimit.WritePerMinute)
	require.False(t, cfg.CORS.AllowAllOrigins)
	require.Equal(t, []string{"https://admin.venuebook.dev", "https://app.venuebook.dev"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRefusesProduction(t *testing.T) {
	for _, env := range []string{"production", "Production", "PRODUCTION"} {
		t.Setenv("ENVIRONMENT", env)

		_, err := Load()
		require.Errorf(t, err, "ENVIRONMENT=%s must be refused", env)
		require.Contains(t, err.Error(), "development-only")
	}
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
}
