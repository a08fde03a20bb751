//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: info
  log_type: console
`)

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, SqliteDbType, cfg.Database.Type)
		assert.Equal(t, ":memory:", cfg.Database.DSN)
		assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
		assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("MissingPort", func(t *testing.T) {
		path := writeConfigFile(t, `
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: info
  log_type: console
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("InvalidDatabaseType", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
database:
  type: mysql
  dsn: "user:password@tcp(localhost:3306)/sessions"
logger:
  log_level: info
  log_type: console
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("InvalidLoggerType", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: info
  log_type: syslog
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})
}
