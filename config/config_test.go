package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "debug", cfg.AppMode)
	assert.Equal(t, "change-me", cfg.JWTSecret)
	assert.Equal(t, 10, cfg.JWTExpiryHours)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_EXPIRY_HOURS", "2")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, 2, cfg.JWTExpiryHours)
}

func TestLoadConfig_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "ten")

	cfg := LoadConfig()

	assert.Equal(t, 10, cfg.JWTExpiryHours)
}
