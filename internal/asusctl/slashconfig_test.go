package asusctl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSlashConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slash.ron")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseSlashConfigFile(t *testing.T) {
	path := writeSlashConfig(t, `(
    enabled: true,
    brightness: 255,
    display_interval: 2,
    display_mode: BitStream,
)
`)

	state, err := parseSlashConfigFile(path)
	require.NoError(t, err)
	assert.True(t, state.Enabled)
	assert.Equal(t, uint8(255), state.Brightness)
	assert.Equal(t, uint8(2), state.Interval)
	assert.Equal(t, SlashBitStream, state.Mode)
}

func TestParseSlashConfigFile_UnknownModeFallsBackToFlow(t *testing.T) {
	path := writeSlashConfig(t, "display_mode: Disco,\n")

	state, err := parseSlashConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, SlashFlow, state.Mode)
}

func TestParseSlashConfigFile_ModeMatchIsCaseSensitive(t *testing.T) {
	path := writeSlashConfig(t, "display_mode: bitstream,\n")

	state, err := parseSlashConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, SlashFlow, state.Mode)
}

func TestParseSlashConfigFile_NumericTruncation(t *testing.T) {
	// Values beyond a byte are truncated, not rejected
	path := writeSlashConfig(t, "brightness: 300,\n")

	state, err := parseSlashConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint8(300%256), state.Brightness)
}

func TestParseSlashConfigFile_UnparsableNumberIgnored(t *testing.T) {
	path := writeSlashConfig(t, "brightness: bright,\ndisplay_interval: 3,\n")

	state, err := parseSlashConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), state.Brightness)
	assert.Equal(t, uint8(3), state.Interval)
}

func TestParseSlashConfigFile_UnknownLinesIgnored(t *testing.T) {
	path := writeSlashConfig(t, `(
    some_future_key: whatever,
    enabled: false,
)
`)

	state, err := parseSlashConfigFile(path)
	require.NoError(t, err)
	assert.False(t, state.Enabled)
	assert.Equal(t, SlashFlow, state.Mode)
}

func TestParseSlashConfigFile_MissingFileIsParseError(t *testing.T) {
	_, err := parseSlashConfigFile(filepath.Join(t.TempDir(), "missing.ron"))
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.Contains(t, err.Error(), "failed to read slash config")
}
