package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CALCSYNC_SERVER_URL", "CALCSYNC_DATA_DIR",
		"CALCSYNC_TOKEN", "CALCSYNC_PASSPHRASE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", c.ServerURL)
	assert.Equal(t, 5, c.MaxRetryAttempts)
	assert.Equal(t, 50, c.DrainBatch)
	assert.Equal(t, 3, c.FailureThreshold)
	assert.Equal(t, 60*time.Second, c.DrainInterval)
	assert.Equal(t, 30*time.Second, c.ProbeInterval)
	assert.NotEmpty(t, c.ProbeURLs)
	assert.Equal(t, filepath.Join(c.DataDir, "records.db"), c.DBPath)
	assert.Equal(t, filepath.Join(c.DataDir, "synclog.db"), c.LogDBPath)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_url: https://sync.example.com
data_dir: `+dir+`
max_retry_attempts: 8
drain_interval: 90s
probe_interval: 10s
probe_urls:
  - https://probe.example.com/health
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://sync.example.com", c.ServerURL)
	assert.Equal(t, dir, c.DataDir)
	assert.Equal(t, 8, c.MaxRetryAttempts)
	assert.Equal(t, 90*time.Second, c.DrainInterval)
	assert.Equal(t, 10*time.Second, c.ProbeInterval)
	assert.Equal(t, []string{"https://probe.example.com/health"}, c.ProbeURLs)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: https://file.example.com\n"), 0o600))

	t.Setenv("CALCSYNC_SERVER_URL", "https://env.example.com")
	t.Setenv("CALCSYNC_TOKEN", "env-token")
	t.Setenv("CALCSYNC_PASSPHRASE", "env-pass")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", c.ServerURL)
	assert.Equal(t, "env-token", c.Token)
	assert.Equal(t, "env-pass", c.Passphrase)
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("drain_interval: banana\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drain_interval")
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: [broken\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_PathExpansion(t *testing.T) {
	clearEnv(t)
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: $XDG_DATA_HOME/custom/records.db\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "custom", "records.db"), c.DBPath)
}
