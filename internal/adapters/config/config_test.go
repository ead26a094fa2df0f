package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "settings:\n  debug: false\n"))
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.Settings.Timezone)
	assert.Equal(t, "sqlite", cfg.Service.Database.Driver)
	assert.Equal(t, "golf.db", cfg.Service.Database.Path)
	assert.False(t, cfg.Service.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Service.Redis.TTL)
	assert.Equal(t, Handicap{Window: 20, Best: 8, Factor: 1.0}, cfg.Handicap)
	assert.Equal(t, ":8080", cfg.Web.Addr)
	assert.Equal(t, "en", cfg.Web.Locale)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
settings:
  debug: true
  timezone: Europe/Moscow
  log-to-file: true
service:
  database:
    driver: postgres
    host: db
    port: 5433
    name: golf
  redis:
    enabled: true
    ttl: 30s
handicap:
  window: 10
  best: 3
  factor: 0.96
  proportional: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Settings.Debug)
	assert.True(t, cfg.Settings.LogToFile)
	assert.Equal(t, "Europe/Moscow", cfg.Settings.Timezone)
	assert.Equal(t, "postgres", cfg.Service.Database.Driver)
	assert.Equal(t, 5433, cfg.Service.Database.Port)
	assert.True(t, cfg.Service.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Service.Redis.TTL)
	assert.Equal(t, Handicap{Window: 10, Best: 3, Factor: 0.96, Proportional: true}, cfg.Handicap)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "service:\n  database:\n    path: from-file.db\n")
	t.Setenv("GOLFSTATS_SERVICE_DATABASE_PATH", "from-env.db")
	t.Setenv("GOLFSTATS_SETTINGS_LOG_TO_FILE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Service.Database.Path)
	assert.True(t, cfg.Settings.LogToFile)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, errorz.ErrConfiguration)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"unknown driver":     "service:\n  database:\n    driver: oracle\n",
		"unknown timezone":   "settings:\n  timezone: Mars/Olympus\n",
		"best above window":  "handicap:\n  window: 5\n  best: 6\n",
		"zero factor":        "handicap:\n  factor: 0\n",
		"postgres sans host": "service:\n  database:\n    driver: postgres\n    host: \"\"\n",
		"empty sqlite path":  "service:\n  database:\n    path: \"\"\n",
		"bad locale":         "web:\n  locale: \"not a tag!\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, errorz.ErrConfiguration)
		})
	}
}
