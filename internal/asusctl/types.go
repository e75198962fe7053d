package asusctl

import (
	"fmt"
	"strings"

	"github.com/Bl4ckspell7/asusctl-gui/internal/errors"
)

func parseErr(format string, args ...any) errors.Error {
	return errFactory.WithData(ErrParseError, fmt.Sprintf(format, args...))
}

// KeyboardBrightness is one of the four keyboard backlight levels. The
// ordinal matches the numeric encoding of the Aura Brightness property.
type KeyboardBrightness int

const (
	BrightnessOff KeyboardBrightness = iota
	BrightnessLow
	BrightnessMed
	BrightnessHigh
)

// DefaultKeyboardBrightness is used whenever a level cannot be determined.
const DefaultKeyboardBrightness = BrightnessHigh

// String returns the lowercase form used as an asusctl command argument.
func (b KeyboardBrightness) String() string {
	switch b {
	case BrightnessOff:
		return "off"
	case BrightnessLow:
		return "low"
	case BrightnessMed:
		return "med"
	case BrightnessHigh:
		return "high"
	}
	return "high"
}

// ParseKeyboardBrightnessLevel parses a brightness name in any letter case.
func ParseKeyboardBrightnessLevel(s string) (KeyboardBrightness, error) {
	switch strings.ToLower(s) {
	case "off":
		return BrightnessOff, nil
	case "low":
		return BrightnessLow, nil
	case "med":
		return BrightnessMed, nil
	case "high":
		return BrightnessHigh, nil
	}
	return DefaultKeyboardBrightness, parseErr("unknown brightness level: %s", s)
}

// PowerProfile is one of the three asusd platform profiles. The ordinal
// matches the numeric encoding of the ThrottlePolicy property.
type PowerProfile int

const (
	ProfileQuiet PowerProfile = iota
	ProfileBalanced
	ProfilePerformance
)

const DefaultPowerProfile = ProfileBalanced

// String returns the capitalized form asusctl prints and accepts.
func (p PowerProfile) String() string {
	switch p {
	case ProfileQuiet:
		return "Quiet"
	case ProfileBalanced:
		return "Balanced"
	case ProfilePerformance:
		return "Performance"
	}
	return "Balanced"
}

// PPDName returns the power-profiles-daemon vocabulary for this profile.
func (p PowerProfile) PPDName() string {
	switch p {
	case ProfileQuiet:
		return "power-saver"
	case ProfilePerformance:
		return "performance"
	default:
		return "balanced"
	}
}

// ParsePowerProfile parses a profile name in any letter case.
func ParsePowerProfile(s string) (PowerProfile, error) {
	switch strings.ToLower(s) {
	case "quiet":
		return ProfileQuiet, nil
	case "balanced":
		return ProfileBalanced, nil
	case "performance":
		return ProfilePerformance, nil
	}
	return DefaultPowerProfile, parseErr("unknown power profile: %s", s)
}

// ProfileState is the result of `asusctl profile --profile-get`. Fields whose
// report line is absent keep the default profile.
type ProfileState struct {
	Active    PowerProfile
	OnAC      PowerProfile
	OnBattery PowerProfile
}

// AuraMode is a keyboard lighting animation mode.
type AuraMode int

const (
	AuraStatic AuraMode = iota
	AuraBreathe
	AuraPulse
)

const DefaultAuraMode = AuraStatic

func (m AuraMode) String() string {
	switch m {
	case AuraStatic:
		return "Static"
	case AuraBreathe:
		return "Breathe"
	case AuraPulse:
		return "Pulse"
	}
	return "Static"
}

// ParseAuraMode parses an aura mode name in any letter case.
func ParseAuraMode(s string) (AuraMode, error) {
	switch strings.ToLower(s) {
	case "static":
		return AuraStatic, nil
	case "breathe":
		return AuraBreathe, nil
	case "pulse":
		return AuraPulse, nil
	}
	return DefaultAuraMode, parseErr("unknown aura mode: %s", s)
}

// SlashMode is a Slash LED bar animation style.
type SlashMode int

const (
	SlashBounce SlashMode = iota
	SlashSlash
	SlashLoading
	SlashBitStream
	SlashTransmission
	SlashFlow
	SlashFlux
	SlashPhantom
	SlashSpectrum
	SlashHazard
	SlashInterfacing
	SlashRamp
	SlashGameOver
	SlashStart
	SlashBuzzer
)

const DefaultSlashMode = SlashFlow

var slashModeNames = [...]string{
	"Bounce",
	"Slash",
	"Loading",
	"BitStream",
	"Transmission",
	"Flow",
	"Flux",
	"Phantom",
	"Spectrum",
	"Hazard",
	"Interfacing",
	"Ramp",
	"GameOver",
	"Start",
	"Buzzer",
}

// SlashModes lists every mode in declaration order, for UI pickers.
func SlashModes() []SlashMode {
	modes := make([]SlashMode, len(slashModeNames))
	for i := range slashModeNames {
		modes[i] = SlashMode(i)
	}
	return modes
}

func (m SlashMode) String() string {
	if m < 0 || int(m) >= len(slashModeNames) {
		return slashModeNames[DefaultSlashMode]
	}
	return slashModeNames[m]
}

// ParseSlashMode parses a mode name. Unlike the other enumerations the match
// is case-sensitive; asusctl only accepts the exact spelling.
func ParseSlashMode(s string) (SlashMode, error) {
	for i, name := range slashModeNames {
		if s == name {
			return SlashMode(i), nil
		}
	}
	return DefaultSlashMode, parseErr("unknown slash mode: %s", s)
}

// SlashState aggregates the Slash LED bar settings. It is sourced either
// wholly from bus property reads (mode excluded) or wholly from the slash.ron
// fallback file.
type SlashState struct {
	Enabled    bool
	Brightness uint8
	Interval   uint8
	Mode       SlashMode
}

// SupportedFeatures is derived from the `asusctl --show-supported` dump by
// substring presence tests. Level and mode lists follow the fixed probe
// order, not the order they appear in the dump.
type SupportedFeatures struct {
	HasAura           bool
	HasPlatform       bool
	HasFanCurves      bool
	HasSlash          bool
	HasChargeControl  bool
	HasThrottlePolicy bool

	KeyboardBrightnessLevels []KeyboardBrightness
	AuraModes                []AuraMode
}

// SystemInfo is the result of `asusctl --version`. Absent labels leave the
// field empty.
type SystemInfo struct {
	AsusctlVersion string
	ProductFamily  string
	BoardName      string
}

// ShowOnEvent identifies one of the Slash display-occasion flags.
type ShowOnEvent int

const (
	ShowOnBoot ShowOnEvent = iota
	ShowOnShutdown
	ShowOnSleep
	ShowOnBattery
	ShowBatteryWarning
)

// ShowOnEvents lists every event flag in declaration order.
func ShowOnEvents() []ShowOnEvent {
	return []ShowOnEvent{ShowOnBoot, ShowOnShutdown, ShowOnSleep, ShowOnBattery, ShowBatteryWarning}
}

func (e ShowOnEvent) String() string {
	switch e {
	case ShowOnBoot:
		return "boot"
	case ShowOnShutdown:
		return "shutdown"
	case ShowOnSleep:
		return "sleep"
	case ShowOnBattery:
		return "battery"
	case ShowBatteryWarning:
		return "battery-warning"
	}
	return "boot"
}

// propertyName returns the Slash interface property backing this flag.
func (e ShowOnEvent) propertyName() string {
	switch e {
	case ShowOnShutdown:
		return "ShowOnShutdown"
	case ShowOnSleep:
		return "ShowOnSleep"
	case ShowOnBattery:
		return "ShowOnBattery"
	case ShowBatteryWarning:
		return "ShowBatteryWarning"
	default:
		return "ShowOnBoot"
	}
}

// cliFlag returns the asusctl slash flag setting this event.
func (e ShowOnEvent) cliFlag() string {
	switch e {
	case ShowOnShutdown:
		return "--show-on-shutdown"
	case ShowOnSleep:
		return "--show-on-sleep"
	case ShowOnBattery:
		return "--show-on-battery"
	case ShowBatteryWarning:
		return "--show-battery-warning"
	default:
		return "--show-on-boot"
	}
}
