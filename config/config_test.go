package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the test and restores them afterwards.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "STORE_BACKEND", "HTTP_PORT", "SWEEP_ON_START", "REDIS_PREFIX")
	t.Setenv("REMOTE_URL", "")
	t.Setenv("REMOTE_ANON_KEY", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.True(t, cfg.SweepOnStart)
	assert.Equal(t, "whitebay:", cfg.RedisPrefix)
	assert.False(t, cfg.RemoteConfigured())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_BACKEND", " Redis ")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SWEEP_ON_START", "false")
	t.Setenv("REMOTE_URL", "https://demo.supabase.co")
	t.Setenv("REMOTE_ANON_KEY", "anon")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.False(t, cfg.SweepOnStart)
	assert.True(t, cfg.RemoteConfigured())
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")

	_, err := Load()

	assert.ErrorContains(t, err, "sqlite")
}

func TestDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5433", DBUser: "wb", DBPassword: "pw", DBName: "resort", DBSSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=wb password=pw dbname=resort sslmode=require", cfg.DSN())
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "nonsense"}.SlogLevel())
}
