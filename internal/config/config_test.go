package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		require.True(t, errors.Is(err, ErrDotEnvNotLoaded), "unexpected error: %v", err)
	}

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 5*time.Minute, cfg.SkillCacheTTL)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "skills_test")
	t.Setenv("JWT_TTL", "15m")

	cfg, err := LoadConfig()
	if err != nil {
		require.ErrorIs(t, err, ErrDotEnvNotLoaded)
	}

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Contains(t, cfg.DSN(), "/skills_test?sslmode=disable")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_TTL", "not-a-duration")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDotEnvNotLoaded))
	assert.Contains(t, err.Error(), "parse env:")
}
