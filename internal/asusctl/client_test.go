package asusctl

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemInfo_InvokesVersion(t *testing.T) {
	f := newFakeRunner()
	f.results["asusctl"] = commandResult{stdout: "asusctl version: 6.2.0\n Product family: ROG Zephyrus G14\n"}
	client := newTestClient(f)

	info, err := client.SystemInfo()
	require.NoError(t, err)
	assert.Equal(t, "6.2.0", info.AsusctlVersion)
	assert.Equal(t, "ROG Zephyrus G14", info.ProductFamily)

	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{"asusctl", "--version"}, f.calls[0])
}

func TestSupportedFeatures_InvokesShowSupported(t *testing.T) {
	f := newFakeRunner()
	f.results["asusctl"] = commandResult{stdout: "xyz.ljones.Platform\n"}
	client := newTestClient(f)

	features, err := client.SupportedFeatures()
	require.NoError(t, err)
	assert.True(t, features.HasPlatform)
	assert.False(t, features.HasAura)

	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{"asusctl", "--show-supported"}, f.calls[0])
}

func TestKeyboardBrightness_MapsBusOrdinal(t *testing.T) {
	cases := map[string]KeyboardBrightness{
		"u 0": BrightnessOff,
		"u 1": BrightnessLow,
		"u 2": BrightnessMed,
		"u 3": BrightnessHigh,
	}
	for wire, want := range cases {
		f := newFakeRunner()
		f.results["busctl"] = commandResult{stdout: wire + "\n"}
		client := newTestClient(f)

		brightness, err := client.KeyboardBrightness()
		require.NoError(t, err, "wire %q", wire)
		assert.Equal(t, want, brightness)

		require.Len(t, f.calls, 1)
		assert.Equal(t, []string{
			"busctl", "get-property",
			"xyz.ljones.Asusd",
			"/xyz/ljones/aura/19b6_4_4",
			"xyz.ljones.Aura",
			"Brightness",
		}, f.calls[0])
	}
}

func TestKeyboardBrightness_UnknownOrdinal(t *testing.T) {
	f := newFakeRunner()
	f.results["busctl"] = commandResult{stdout: "u 7\n"}
	client := newTestClient(f)

	_, err := client.KeyboardBrightness()
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestSetKeyboardBrightness_ArgumentVector(t *testing.T) {
	f := newFakeRunner()
	client := newTestClient(f)

	require.NoError(t, client.SetKeyboardBrightness(BrightnessLow))
	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{"asusctl", "--kbd-bright", "low"}, f.calls[0])
}

func TestProfileState_InvokesProfileGet(t *testing.T) {
	f := newFakeRunner()
	f.results["asusctl"] = commandResult{stdout: "Active profile is Quiet\nProfile on AC is Balanced\nProfile on Battery is Quiet\n"}
	client := newTestClient(f)

	state, err := client.ProfileState()
	require.NoError(t, err)
	assert.Equal(t, ProfileQuiet, state.Active)
	assert.Equal(t, ProfileBalanced, state.OnAC)
	assert.Equal(t, ProfileQuiet, state.OnBattery)

	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{"asusctl", "profile", "--profile-get"}, f.calls[0])
}

func TestSetProfile_PPDPreferred(t *testing.T) {
	f := newFakeRunner()
	f.results["powerprofilesctl"] = commandResult{}
	client := newTestClient(f)

	require.NoError(t, client.SetProfile(ProfileQuiet))

	require.Len(t, f.calls, 1, "asusctl must not run when powerprofilesctl succeeds")
	assert.Equal(t, []string{"powerprofilesctl", "set", "power-saver"}, f.calls[0])
}

func TestSetProfile_FallsBackWhenPPDMissing(t *testing.T) {
	f := newFakeRunner()
	f.errs["powerprofilesctl"] = exec.ErrNotFound
	f.results["asusctl"] = commandResult{}
	client := newTestClient(f)

	require.NoError(t, client.SetProfile(ProfilePerformance))

	require.Len(t, f.calls, 2)
	assert.Equal(t, []string{"powerprofilesctl", "set", "performance"}, f.calls[0])
	assert.Equal(t, []string{"asusctl", "profile", "--profile-set", "Performance"}, f.calls[1])
}

func TestSetProfile_FallsBackWhenPPDExitsNonZero(t *testing.T) {
	f := newFakeRunner()
	f.results["powerprofilesctl"] = commandResult{stderr: "no such profile", exitCode: 1}
	f.results["asusctl"] = commandResult{}
	client := newTestClient(f)

	require.NoError(t, client.SetProfile(ProfileBalanced))
	require.Len(t, f.calls, 2)
	assert.Equal(t, []string{"asusctl", "profile", "--profile-set", "Balanced"}, f.calls[1])
}

func TestSetProfile_SurfacesOnlyFinalFailure(t *testing.T) {
	f := newFakeRunner()
	f.errs["powerprofilesctl"] = exec.ErrNotFound
	f.errs["asusctl"] = exec.ErrNotFound
	client := newTestClient(f)

	err := client.SetProfile(ProfileQuiet)
	require.Error(t, err)
	assert.True(t, IsNotInstalled(err))
}

func TestChargeLimit_ReadsPlatformThreshold(t *testing.T) {
	f := newFakeRunner()
	f.results["busctl"] = commandResult{stdout: "y 80\n"}
	client := newTestClient(f)

	limit, err := client.ChargeLimit()
	require.NoError(t, err)
	assert.Equal(t, uint8(80), limit)

	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{
		"busctl", "get-property",
		"xyz.ljones.Asusd",
		"/xyz/ljones",
		"xyz.ljones.Platform",
		"ChargeControlEndThreshold",
	}, f.calls[0])
}

func TestSetChargeLimit_RangeEnforced(t *testing.T) {
	f := newFakeRunner()
	client := newTestClient(f)

	for _, limit := range []uint8{0, 19, 101} {
		err := client.SetChargeLimit(limit)
		require.Error(t, err, "limit %d", limit)
		assert.True(t, IsOutOfRange(err))
	}
	assert.Empty(t, f.calls, "rejected values must not spawn a subprocess")

	require.NoError(t, client.SetChargeLimit(80))
	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{"asusctl", "--chg-limit", "80"}, f.calls[0])
}

func TestSlashEnabled_BusPreferred(t *testing.T) {
	f := newFakeRunner()
	f.results["busctl"] = commandResult{stdout: "b true\n"}
	client := newTestClient(f)

	enabled, err := client.SlashEnabled()
	require.NoError(t, err)
	assert.True(t, enabled)
	require.Len(t, f.calls, 1)
}

func TestSlashEnabled_ConfigFallbackOnBusError(t *testing.T) {
	path := writeSlashConfig(t, "enabled: true,\n")
	f := newFakeRunner()
	f.errs["busctl"] = assert.AnError
	client := newTestClient(f, WithSlashConfigPath(path))

	enabled, err := client.SlashEnabled()
	require.NoError(t, err, "fallback must swallow the bus error")
	assert.True(t, enabled)
}

func TestSlashBrightness_ConfigFallbackOnBusParseError(t *testing.T) {
	// A malformed wire value counts as a bus failure too
	path := writeSlashConfig(t, "brightness: 128,\n")
	f := newFakeRunner()
	f.results["busctl"] = commandResult{stdout: "not a wire value\n"}
	client := newTestClient(f, WithSlashConfigPath(path))

	brightness, err := client.SlashBrightness()
	require.NoError(t, err)
	assert.Equal(t, uint8(128), brightness)
}

func TestSlashInterval_ConfigFallback(t *testing.T) {
	path := writeSlashConfig(t, "display_interval: 4,\n")
	f := newFakeRunner()
	f.errs["busctl"] = assert.AnError
	client := newTestClient(f, WithSlashConfigPath(path))

	interval, err := client.SlashInterval()
	require.NoError(t, err)
	assert.Equal(t, uint8(4), interval)
}

func TestSlashRead_BothSourcesDeadSurfacesFallbackError(t *testing.T) {
	f := newFakeRunner()
	f.errs["busctl"] = assert.AnError
	client := newTestClient(f, WithSlashConfigPath(filepath.Join(t.TempDir(), "missing.ron")))

	_, err := client.SlashEnabled()
	require.Error(t, err)
	assert.True(t, IsParseError(err), "the fallback's own error is what surfaces")
}

func TestSlashMode_ConfigFileOnly(t *testing.T) {
	path := writeSlashConfig(t, "display_mode: Hazard,\n")
	f := newFakeRunner()
	client := newTestClient(f, WithSlashConfigPath(path))

	mode, err := client.SlashMode()
	require.NoError(t, err)
	assert.Equal(t, SlashHazard, mode)
	assert.Empty(t, f.calls, "the bus is never consulted for the mode")
}

func TestSlashWrites_ArgumentVectors(t *testing.T) {
	f := newFakeRunner()
	client := newTestClient(f)

	require.NoError(t, client.SetSlashEnabled(true))
	require.NoError(t, client.SetSlashEnabled(false))
	require.NoError(t, client.SetSlashBrightness(200))
	require.NoError(t, client.SetSlashMode(SlashGameOver))
	require.NoError(t, client.SetSlashInterval(5))

	require.Len(t, f.calls, 5)
	assert.Equal(t, []string{"asusctl", "slash", "--enable"}, f.calls[0])
	assert.Equal(t, []string{"asusctl", "slash", "--disable"}, f.calls[1])
	assert.Equal(t, []string{"asusctl", "slash", "--brightness", "200"}, f.calls[2])
	assert.Equal(t, []string{"asusctl", "slash", "--mode", "GameOver"}, f.calls[3])
	assert.Equal(t, []string{"asusctl", "slash", "--interval", "5"}, f.calls[4])
}

func TestSetSlashInterval_RangeEnforced(t *testing.T) {
	f := newFakeRunner()
	client := newTestClient(f)

	err := client.SetSlashInterval(6)
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))
	assert.Empty(t, f.calls)
}

func TestSlashShowOn_BusOnlyNoFallback(t *testing.T) {
	f := newFakeRunner()
	f.errs["busctl"] = assert.AnError
	client := newTestClient(f, WithSlashConfigPath(writeSlashConfig(t, "enabled: true,\n")))

	_, err := client.SlashShowOn(ShowOnSleep)
	require.Error(t, err, "show-on flags have no config fallback")
	assert.True(t, IsCommandFailed(err))
}

func TestSlashShowOn_ReadsProperty(t *testing.T) {
	f := newFakeRunner()
	f.results["busctl"] = commandResult{stdout: "b false\n"}
	client := newTestClient(f)

	value, err := client.SlashShowOn(ShowBatteryWarning)
	require.NoError(t, err)
	assert.False(t, value)

	require.Len(t, f.calls, 1)
	assert.Equal(t, "ShowBatteryWarning", f.calls[0][5])
}

func TestSetSlashShowOn_ArgumentVectors(t *testing.T) {
	f := newFakeRunner()
	client := newTestClient(f)

	require.NoError(t, client.SetSlashShowOn(ShowOnBoot, true))
	require.NoError(t, client.SetSlashShowOn(ShowOnBattery, false))

	require.Len(t, f.calls, 2)
	assert.Equal(t, []string{"asusctl", "slash", "--show-on-boot", "true"}, f.calls[0])
	assert.Equal(t, []string{"asusctl", "slash", "--show-on-battery", "false"}, f.calls[1])
}

func TestSlashState_AssemblesAggregate(t *testing.T) {
	path := writeSlashConfig(t, `(
    enabled: true,
    brightness: 100,
    display_interval: 1,
    display_mode: Spectrum,
)
`)
	f := newFakeRunner()
	f.errs["busctl"] = assert.AnError
	client := newTestClient(f, WithSlashConfigPath(path))

	state, err := client.SlashState()
	require.NoError(t, err)
	assert.Equal(t, SlashState{
		Enabled:    true,
		Brightness: 100,
		Interval:   1,
		Mode:       SlashSpectrum,
	}, state)
}
