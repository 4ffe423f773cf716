package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"grpc_address":             "www.example:9000",
		"http_address":             "",
		"database_driver":          "sqlite",
		"database_dsn":             "identity.db",
		"query_timeout":            "3s",
		"request_timeout":          int64(7 * time.Second),
		"secret_key":               "my_secret_key",
		"assertion_ttl":            "1m",
		"app_password_application": "CI",
		"totp_replay_protection":   true,
		"redis_address":            "redis:6379",
		"max_otp_attempts":         4,
		"otp_cooldown":             "90s",
		"migrate":                  true,
		"log_level":                "warn",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-config", pathFlag}))

		assert.Equal(t, "www.example:9000", cfg.GRPCAddress)
		assert.Empty(t, cfg.HTTPAddress)
		assert.Equal(t, "sqlite", cfg.DatabaseDriver)
		assert.Equal(t, "identity.db", cfg.DatabaseDSN)
		assert.Equal(t, 3*time.Second, cfg.QueryTimeout)
		assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, time.Minute, cfg.AssertionTTL)
		assert.Equal(t, "CI", cfg.AppPasswordApplication)
		assert.True(t, cfg.TOTPReplayProtection)
		assert.Equal(t, "redis:6379", cfg.RedisAddress)
		assert.Equal(t, 4, cfg.MaxOTPAttempts)
		assert.Equal(t, 90*time.Second, cfg.OTPCooldown)
		assert.True(t, cfg.Migrate)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-a", ":1"}))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"secret_key": "only-this"})

		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-c", partial}))

		want := defaults()
		want.SecretKey = "only-this"
		assert.Equal(t, want, cfg)
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))

		require.Error(t, parseJson(defaults(), []string{"-c", bad}))
	})

	t.Run("invalid duration", func(t *testing.T) {
		bad := writeTempJSON(t, dir, "dur.json", map[string]any{"query_timeout": true})
		require.Error(t, parseJson(defaults(), []string{"-c", bad}))
	})
}
