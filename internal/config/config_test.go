package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "0.0.0.0", cfg.ServerHost)
		assert.Equal(t, 8080, cfg.ServerPort)
		assert.Equal(t, 4*time.Hour, cfg.TokenExpiration)
		assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.RateLimitLoginEnabled)
		assert.False(t, cfg.CORSEnabled)
		assert.True(t, cfg.MetricsEnabled)
		assert.Equal(t, "gateway", cfg.MetricsNamespace)
		assert.Equal(t, 8081, cfg.MetricsPort)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("TOKEN_SECRET", "test-secret")
		t.Setenv("TOKEN_EXPIRATION_SECONDS", "60")
		t.Setenv("IDENTITY_ENDPOINT", "http://identity:8001")
		t.Setenv("BACKEND_TIMEOUT_SECONDS", "3")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		assert.Equal(t, 9000, cfg.ServerPort)
		assert.Equal(t, "test-secret", cfg.TokenSecret)
		assert.Equal(t, time.Minute, cfg.TokenExpiration)
		assert.Equal(t, "http://identity:8001", cfg.IdentityEndpoint)
		assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{"debug", "debug"},
		{"info", "release"},
		{"warn", "release"},
		{"error", "release"},
		{"unknown", "release"},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, cfg.GetGinMode())
		})
	}
}
