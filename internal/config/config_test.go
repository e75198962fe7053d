package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Bl4ckspell7/asusctl-gui/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asusctl-gui.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
interval = 10
log_level = "debug"
telemetry = true
database = "/path/to/telemetry.db"
asusctl_path = "/usr/local/bin/asusctl"
slash_config = "/tmp/slash.ron"
`)

	cfg, err := config.Load(configPath, nil)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Interval, "Expected Interval 10")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel debug")
	assert.True(t, cfg.Telemetry, "Expected Telemetry true")
	assert.Equal(t, "/path/to/telemetry.db", cfg.TelemetryDB)
	assert.Equal(t, "/usr/local/bin/asusctl", cfg.AsusctlPath)
	assert.Equal(t, "/tmp/slash.ron", cfg.SlashConfigPath)
	assert.Equal(t, "busctl", cfg.BusctlPath, "Unset paths keep defaults")
}

func TestLoadFromEnvVar(t *testing.T) {
	configPath := writeConfig(t, "interval = 7\n")
	t.Setenv("ASUSCTL_GUI_CONFIG", configPath)

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Interval)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ASUSCTL_GUI_CONFIG", "")

	cfg, err := config.Load("", nil)
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, 5, cfg.Interval, "Expected default Interval 5")
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default LogLevel info")
	assert.False(t, cfg.Telemetry, "Expected Telemetry false")
	assert.Equal(t, "asusctl", cfg.AsusctlPath)
	assert.Equal(t, "busctl", cfg.BusctlPath)
	assert.Equal(t, "powerprofilesctl", cfg.PowerProfilesCtlPath)
	assert.Equal(t, "/etc/asusd/slash.ron", cfg.SlashConfigPath)
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	configPath := writeConfig(t, "This is not a valid TOML file\n")

	_, err := config.Load(configPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read configuration")
}

func TestInvalidLogLevel(t *testing.T) {
	configPath := writeConfig(t, `log_level = "loud"`)

	_, err := config.Load(configPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid log level")
}

func TestInvalidInterval(t *testing.T) {
	configPath := writeConfig(t, "interval = 0\n")

	_, err := config.Load(configPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid configuration")
}
