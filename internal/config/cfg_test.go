//go:build unit

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8000", cfg.ServerAddress())
	assert.Equal(t, "http://localhost:8000", cfg.Client.APIURL)
	assert.Equal(t, 3, cfg.RateLimit.Requests)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, time.Second, cfg.WelcomeDelay)
	assert.Equal(t, 10*time.Second, cfg.Client.RequestTimeout())
	assert.Empty(t, cfg.GrpcHealthAddress())
	assert.True(t, cfg.Persistent())
	assert.False(t, cfg.IsProduction())
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("API_URL", "https://api.nutri-flow.me")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("GRPC_HEALTH_PORT", "9001")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://nutri-flow.me,https://www.nutri-flow.me")
	t.Setenv("RATE_LIMIT_WINDOW", "90s")
	t.Setenv("DB_NAME", "")

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.nutri-flow.me", cfg.Client.APIURL)
	assert.Equal(t, "localhost:9000", cfg.ServerAddress())
	assert.Equal(t, "localhost:9001", cfg.GrpcHealthAddress())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://nutri-flow.me", "https://www.nutri-flow.me"}, cfg.AllowedOrigins)
	assert.Equal(t, 90*time.Second, cfg.RateLimit.Window)
	assert.False(t, cfg.Persistent())
}
