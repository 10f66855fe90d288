package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chronicler/internal/config"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

var configKeys = []string{
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "SQLITE_PATH", "DICE_SEED",
	"DND5E_API_ENABLED", "DND5E_HTTP_TIMEOUT", "SESSION_WORLD_TTL",
}

// clearEnv blanks every key so values from the host do not leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.False(t, cfg.UseRedis())
	assert.False(t, cfg.UseSQLite())
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, int64(0), cfg.Dice.Seed)
	assert.False(t, cfg.DND5E.Enabled)
	assert.Equal(t, 10*time.Second, cfg.DND5E.HTTPTimeout)
	assert.Equal(t, time.Duration(0), cfg.Session.WorldTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_ADDR", "localhost:6380")
	t.Setenv("REDIS_PASSWORD", "hunter2")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SQLITE_PATH", "/tmp/chronicler.db")
	t.Setenv("DICE_SEED", "42")
	t.Setenv("DND5E_API_ENABLED", "true")
	t.Setenv("DND5E_HTTP_TIMEOUT", "2s")
	t.Setenv("SESSION_WORLD_TTL", "72h")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.UseRedis())
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr)
	assert.Equal(t, "hunter2", cfg.Redis.Password)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.UseSQLite())
	assert.Equal(t, "/tmp/chronicler.db", cfg.SQLite.Path)
	assert.Equal(t, int64(42), cfg.Dice.Seed)
	assert.True(t, cfg.DND5E.Enabled)
	assert.Equal(t, 2*time.Second, cfg.DND5E.HTTPTimeout)
	assert.Equal(t, 72*time.Hour, cfg.Session.WorldTTL)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric db", key: "REDIS_DB", value: "one"},
		{name: "negative db", key: "REDIS_DB", value: "-1"},
		{name: "bad seed", key: "DICE_SEED", value: "lucky"},
		{name: "bad bool", key: "DND5E_API_ENABLED", value: "maybe"},
		{name: "zero timeout", key: "DND5E_HTTP_TIMEOUT", value: "0s"},
		{name: "bad duration", key: "SESSION_WORLD_TTL", value: "forever"},
		{name: "negative ttl", key: "SESSION_WORLD_TTL", value: "-1h"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeValidation, apperrors.GetCode(err))
		})
	}
}
