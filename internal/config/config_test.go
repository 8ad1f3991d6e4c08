package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.VisitorTTL)
	assert.Equal(t, 15*time.Minute, cfg.Ban.Duration)
	assert.False(t, cfg.BanEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVENTORY_ADDR", ":9090")
	t.Setenv("INVENTORY_SEED", "false")
	t.Setenv("INVENTORY_RATELIMIT_BURST", "3")
	t.Setenv("INVENTORY_REDIS_ADDR", "localhost:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.False(t, cfg.Seed)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.True(t, cfg.BanEnabled())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	content := `
addr: ":7070"
log:
  level: debug
  format: console
ratelimit:
  rps: 1.5
  visitor_ttl: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 1.5, cfg.RateLimit.RPS)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.VisitorTTL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.RateLimit.RPS = 0
	cfg.Addr = " "
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "addr is required")
	assert.Contains(t, err.Error(), "ratelimit.rps")

	cfg.RateLimit.Enabled = false
	cfg.Addr = ":8080"
	assert.NoError(t, cfg.Validate())
}
