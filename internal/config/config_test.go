package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "hiring-intel")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv(configFileEnv, "")

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_ENV, APP_NAME, HTTP_PORT")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv(configFileEnv, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "hiring-intel", cfg.App.AppName)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 1, cfg.Match.Concurrency)
	assert.Equal(t, "append", cfg.Match.DefaultMode)
	assert.Equal(t, 5*time.Minute, cfg.Match.LockTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv(configFileEnv, "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_POOL_MAX_CONNS", "12")
	t.Setenv("REDIS_TTL", "30s")
	t.Setenv("MATCH_CONCURRENCY", "4")
	t.Setenv("MATCH_DEFAULT_MODE", " Replace ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.DBHost)
	assert.Equal(t, int32(12), cfg.Database.PoolMaxConns)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 4, cfg.Match.Concurrency)
	assert.Equal(t, "replace", cfg.Match.DefaultMode)
}

func TestLoad_ClampsRateLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "25", want: 25},
		{raw: "-3", want: 0},
		{raw: "2000000000", want: MaxRateLimit},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			setRequired(t)
			t.Setenv(configFileEnv, "")
			t.Setenv("MATCH_RATE_LIMIT", tt.raw)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Match.RateLimit)
		})
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `
app:
  name: from-file
  env: staging
  http_port: "9000"
match:
  concurrency: 8
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	t.Setenv(configFileEnv, path)
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.App.AppName)
	assert.Equal(t, "9100", cfg.App.HTTPPort)
	assert.Equal(t, 8, cfg.Match.Concurrency)
}
