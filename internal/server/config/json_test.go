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
	path := writeTempJSON(t, dir, "flag.json", map[string]any{
		"http_addr":        "www.example:9000",
		"health_addr_grpc": "",
		"database_driver":  "sqlite",
		"database_dsn":     "radar.db",
		"db_host":          "h",
		"db_port":          "6543",
		"db_user":          "u",
		"db_password":      "p",
		"db_name":          "n",
		"store_timeout":    "2s",
		"shutdown_timeout": 1000000000,
		"health_interval":  "30s",
		"bcrypt_cost":      12,
		"strict_update":    true,
		"log_level":        "debug",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "www.example:9000", cfg.HTTPAddr)
		assert.Equal(t, "", cfg.HealthAddrGRPC, "explicit empty disables health endpoint")
		assert.Equal(t, "sqlite", cfg.DatabaseDriver)
		assert.Equal(t, "radar.db", cfg.DatabaseDSN)
		assert.Equal(t, "h", cfg.DBHost)
		assert.Equal(t, "6543", cfg.DBPort)
		assert.Equal(t, "u", cfg.DBUser)
		assert.Equal(t, "p", cfg.DBPassword)
		assert.Equal(t, "n", cfg.DBName)
		assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
		assert.Equal(t, time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, 30*time.Second, cfg.HealthInterval)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.True(t, cfg.StrictUpdate)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"db_name": "only"})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-c", partial}))

		assert.Equal(t, "only", cfg.DBName)
		assert.Equal(t, ":8000", cfg.HTTPAddr)
		assert.Equal(t, ":50051", cfg.HealthAddrGRPC)
		assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{HTTPAddr: "defaults:1234", DBName: "keep"}
		require.NoError(t, parseJson(cfg, []string{"-a", ":1"}))

		assert.Equal(t, "defaults:1234", cfg.HTTPAddr)
		assert.Equal(t, "keep", cfg.DBName)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Error(t, parseJson(cfg, []string{"-config", bad}))
	})
}
