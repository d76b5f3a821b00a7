package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		// When: loading from a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		// Then: defaults are applied
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 3, conf.BoardSize)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Zero(t, conf.Seed)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.TTL)
	})

	t.Run("Reads the yaml file", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
board-size: 5
seed: 42
storage: redis
redis:
  host: redis.local
  port: "6380"
  db: 2
  ttl: 1h
`)

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 5, conf.BoardSize)
		assert.Equal(t, uint64(42), conf.Seed)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "redis.local:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Redis.DB)
		assert.Equal(t, time.Hour, conf.Redis.TTL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "board-size: 5\n")
		t.Setenv("BOARD_SIZE", "7")

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 7, conf.BoardSize)
	})

	t.Run("Rejects a board that is too small", func(t *testing.T) {
		path := writeConfig(t, "board-size: 2\n")

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Rejects unknown storage", func(t *testing.T) {
		t.Setenv("STORAGE", "postgres")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")

		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
