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

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	full := writeTempJSON(t, map[string]any{
		"endpoint_addr_http": "0.0.0.0:9000",
		"database_dsn":       "file:users.db",
		"database_dialect":   "sqlite",
		"max_connections":    3,
		"static_path":        "/var/www",
		"password_hasher":    "bcrypt",
		"log_backend":        "logrus",
		"log_level":          "error",
		"shutdown_timeout":   "1500ms",
	})

	t.Run("loads every field", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"-config", full})

		assert.Equal(t, Config{
			EndpointAddrHTTP: "0.0.0.0:9000",
			DatabaseDSN:      "file:users.db",
			DatabaseDialect:  "sqlite",
			MaxConnections:   3,
			StaticPath:       "/var/www",
			PasswordHasher:   "bcrypt",
			LogBackend:       "logrus",
			LogLevel:         "error",
			ShutdownTimeout:  1500 * time.Millisecond,
		}, *cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"log_level": "debug"})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", partial})

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, 5, cfg.MaxConnections)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := &Config{DatabaseDSN: "keep"}
		parseJson(cfg, []string{"-a", ":1"})
		assert.Equal(t, "keep", cfg.DatabaseDSN)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})
}
