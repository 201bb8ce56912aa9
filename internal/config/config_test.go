package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, 12*time.Hour, cfg.AccessTokenExp())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: "9090"
  mode: production
storage:
  data_dir: /var/lib/schoolregis
jwt:
  secret: file-secret
  access_token_expiration: 30m
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "/var/lib/schoolregis", cfg.Storage.DataDir)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenExp())
	// unset file values keep their defaults
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("STORAGE_DATA_DIR", "/tmp/regdata")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "/tmp/regdata", cfg.Storage.DataDir)
}

func TestLoadConfigRejectsBadExpiration(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "not-a-duration")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "value")
	t.Setenv("X_INT", "42")
	t.Setenv("X_BOOL", "yes")

	assert.Equal(t, "value", GetEnv("X_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("X_UNSET", "fallback"))
	assert.Equal(t, 42, GetEnvAsInt("X_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("X_UNSET", 7))
	assert.True(t, GetEnvAsBool("X_BOOL", false))
	assert.False(t, GetEnvAsBool("X_UNSET", false))
}
