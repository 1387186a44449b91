package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
db_path: /var/lib/joydrive/eeprom.db
verbose: true
estop_in: true
`

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("File", func(t *testing.T) {
		path := writeConfig(t, testYAML)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, Config{
			DBPath:  "/var/lib/joydrive/eeprom.db",
			Verbose: true,
			EstopIn: true,
		}, cfg)
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		path := writeConfig(t, testYAML)
		t.Setenv("JOYDRIVE_DB", "/tmp/other.db")
		t.Setenv("JOYDRIVE_ESTOP_IN", "false")
		t.Setenv("JOYDRIVE_SELECT_IN", "true")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/other.db", cfg.DBPath)
		assert.False(t, cfg.EstopIn)
		assert.True(t, cfg.SelectIn)
		assert.True(t, cfg.Verbose)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "error reading config file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		path := writeConfig(t, "db_path: [")
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "error parsing config file")
	})

	t.Run("InvalidEnv", func(t *testing.T) {
		t.Setenv("JOYDRIVE_VERBOSE", "maybe")
		_, err := LoadConfig("")
		assert.ErrorContains(t, err, "error parsing environment")
	})

	t.Run("EmptyDBPath", func(t *testing.T) {
		path := writeConfig(t, `db_path: ""`)
		_, err := LoadConfig(path)
		assert.Error(t, err)

		path = writeConfig(t, "db_path: \"\"\nmemory: true\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Memory)
	})
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
