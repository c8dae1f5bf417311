package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-tasks/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply once the secret is set", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-signing-key")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, ":3000", cfg.ServerAddr)
		assert.Equal(t, "file:tasks.db", cfg.DatabaseDSN)
		assert.Equal(t, "test-signing-key", cfg.JWTSecret)
		assert.Equal(t, 168, cfg.TokenExpiration)
		assert.Equal(t, "go-tasks", cfg.Issuer)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.Debug)
	})

	t.Run("env vars override defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-signing-key")
		t.Setenv("SERVER_ADDR", ":8080")
		t.Setenv("TOKEN_EXPIRATION", "24")
		t.Setenv("TOKEN_ISSUER", "tasks-staging")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.ServerAddr)
		assert.Equal(t, 24, cfg.TokenExpiration)
		assert.Equal(t, "tasks-staging", cfg.Issuer)
	})

	t.Run("refuses to start without a secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})
}

func TestValidate(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{
			ServerAddr:      ":3000",
			JWTSecret:       "test-signing-key",
			TokenExpiration: 168,
		}
	}

	t.Run("accepts a complete config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("rejects non-positive expiration", func(t *testing.T) {
		cfg := base()
		cfg.TokenExpiration = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects an empty listen address", func(t *testing.T) {
		cfg := base()
		cfg.ServerAddr = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestAuthConfig(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:       "test-signing-key",
		TokenExpiration: 24,
		Issuer:          "go-tasks",
	}

	assert.Equal(t, "test-signing-key", cfg.GetSigningKey())
	assert.Equal(t, "user", cfg.GetContextKey())
	assert.Equal(t, 24, cfg.GetTokenExpiration())
	assert.Equal(t, "Bearer", cfg.GetAuthScheme())
	assert.Equal(t, "go-tasks", cfg.GetIssuer())
	assert.Nil(t, cfg.GetAudience())
}
