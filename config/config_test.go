package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "JWT_EXPIRY_HOURS", "COMPLETION_MODEL", "COMPLETION_MAX_TOKENS"} {
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	assert.Equal(t, "8000", cfg.AppPort)
	assert.Equal(t, 24, cfg.JWTExpiryHours)
	assert.Equal(t, "gpt-3.5-turbo-instruct", cfg.CompletionModel)
	assert.Equal(t, 3000, cfg.CompletionMaxTokens)
	assert.Equal(t, float64(0), cfg.CompletionTemperature)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("JWT_EXPIRY_HOURS", "1")
	t.Setenv("COMPLETION_TEMPERATURE", "0.7")
	t.Setenv("ADMIN_EMAIL", "ops@example.com")

	cfg := LoadConfig()

	assert.Equal(t, "9999", cfg.AppPort)
	assert.Equal(t, 1, cfg.JWTExpiryHours)
	assert.Equal(t, 0.7, cfg.CompletionTemperature)
	assert.Equal(t, "ops@example.com", cfg.AdminEmail)
}
