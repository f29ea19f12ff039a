package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/punch-clock/internal/config"
)

func TestLoadFirstRunWritesTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.Storage.Dir = dir
	assert.Equal(t, want, cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "template should be written on first run")

	// The written template must itself load to the same defaults.
	again, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestLoadWithComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `// comment line
{
  // storage section
  "storage": {"backend": "redis", "redis_addr": "cache:6379", "key": "clock"},
  "workday": {"standard_hours": 6, "require_worker_name": false},
  "ui": {"refresh": "1m"}
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, "clock", cfg.Storage.Key)
	assert.Equal(t, config.DefaultRedisPrefix, cfg.Storage.RedisPrefix)
	assert.Equal(t, 6.0, cfg.Workday.StandardHours)
	assert.False(t, cfg.Workday.RequireWorkerName)
	assert.Equal(t, time.Minute, cfg.UI.Refresh)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log": {"level": "info"}}`), 0o600))
	t.Setenv("PUNCH_LOG_LEVEL", "debug")
	t.Setenv("PUNCH_WORKDAY_STANDARD_HOURS", "7.5")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7.5, cfg.Workday.StandardHours)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad json", `{bad json`},
		{"unknown backend", `{"storage": {"backend": "sqlite"}}`},
		{"postgres without dsn", `{"storage": {"backend": "postgres"}}`},
		{"zero standard hours", `{"workday": {"standard_hours": 0}}`},
		{"bad log level", `{"log": {"level": "loud"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			cfg, err := config.Load(path)
			assert.Error(t, err)
			assert.Equal(t, config.Default(), cfg)
		})
	}
}
