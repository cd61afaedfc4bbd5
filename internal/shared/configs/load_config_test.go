package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeConfig(t, `server:
  port: 9090
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
sources:
  access_log_path: /srv/logs/access.log
  error_log_path: /srv/logs/error.log
  access_tail_lines: 5000
  error_tail_lines: 1000
refresh:
  interval_seconds: 5
  paused: true
  tail_timeout_seconds: 3
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/srv/logs/access.log", cfg.Sources.AccessLogPath)
	assert.Equal(t, "/srv/logs/error.log", cfg.Sources.ErrorLogPath)
	assert.Equal(t, 5000, cfg.Sources.AccessTailLines)
	assert.Equal(t, 1000, cfg.Sources.ErrorTailLines)
	assert.Equal(t, 5, cfg.Refresh.IntervalSeconds)
	assert.True(t, cfg.Refresh.Paused)
	assert.Equal(t, 3, cfg.Refresh.TailTimeoutSeconds)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `log:
  level: warn
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/var/log/nginx/access.log", cfg.Sources.AccessLogPath)
	assert.Equal(t, "/var/log/nginx/error.log", cfg.Sources.ErrorLogPath)
	assert.Equal(t, 10000, cfg.Sources.AccessTailLines)
	assert.Equal(t, 1000, cfg.Sources.ErrorTailLines)
	assert.Equal(t, 2, cfg.Refresh.IntervalSeconds)
	assert.False(t, cfg.Refresh.Paused)
	assert.Equal(t, 5, cfg.Refresh.TailTimeoutSeconds)
	assert.False(t, cfg.Export.Enabled)
	assert.Equal(t, "./.tmp/snapshots", cfg.Export.Dir)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("NGINX_MONITOR_SOURCES_ACCESS_LOG_PATH", "/tmp/other-access.log")
	t.Setenv("NGINX_MONITOR_REFRESH_INTERVAL_SECONDS", "7")

	path := writeConfig(t, `sources:
  access_log_path: /srv/logs/access.log
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other-access.log", cfg.Sources.AccessLogPath)
	assert.Equal(t, 7, cfg.Refresh.IntervalSeconds)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `log:
  level: loud
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "log.level (oneof=")
}

func TestLoadConfig_InvalidPortRange(t *testing.T) {
	path := writeConfig(t, `server:
  port: 70000
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "server.port (max=65535)")
}

func TestLoadConfig_ErrorTailLinesIsFixed(t *testing.T) {
	path := writeConfig(t, `sources:
  error_tail_lines: 50
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sources.errortaillines (eq=1000)")
}

func TestLoadConfig_IntervalOutOfRange(t *testing.T) {
	path := writeConfig(t, `refresh:
  interval_seconds: 7200
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh.intervalseconds (max=3600)")
}

func TestLoadConfig_ExportEnabled(t *testing.T) {
	path := writeConfig(t, `export:
  enabled: true
  dir: /var/lib/nginx-monitor/export
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Export.Enabled)
	assert.Equal(t, "/var/lib/nginx-monitor/export", cfg.Export.Dir)
}

func TestLoadConfig_ExportEnabledWithoutDir(t *testing.T) {
	path := writeConfig(t, `export:
  enabled: true
  dir: ""
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export.dir (required when Enabled true)")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/configs.yml")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultConfigPath, ConfigPath())

	t.Setenv(EnvConfigPath, "/etc/nginx-monitor.yml")
	assert.Equal(t, "/etc/nginx-monitor.yml", ConfigPath())
}
