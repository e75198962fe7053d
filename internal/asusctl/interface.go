package asusctl

// Controller is the read/write surface callers use. Every call is a fresh
// probe of the external tools; nothing is cached between calls and no
// read-back verification follows a write.
type Controller interface {
	// System identity and capabilities, from asusctl text output.
	SystemInfo() (SystemInfo, error)
	SupportedFeatures() (SupportedFeatures, error)

	// Keyboard backlight. Reads go through the Aura bus object.
	KeyboardBrightness() (KeyboardBrightness, error)
	SetKeyboardBrightness(level KeyboardBrightness) error

	// Platform profiles. Reads parse the CLI report; writes try
	// powerprofilesctl first and fall back to asusctl.
	ProfileState() (ProfileState, error)
	SetProfile(profile PowerProfile) error

	// Battery charge control threshold (20-100).
	ChargeLimit() (uint8, error)
	SetChargeLimit(limit uint8) error

	// Slash LED bar. Enabled/brightness/interval reads prefer the bus and
	// fall back to the slash.ron config file; the mode is config-file only.
	SlashEnabled() (bool, error)
	SetSlashEnabled(enabled bool) error
	SlashBrightness() (uint8, error)
	SetSlashBrightness(brightness uint8) error
	SlashInterval() (uint8, error)
	SetSlashInterval(interval uint8) error
	SlashMode() (SlashMode, error)
	SetSlashMode(mode SlashMode) error

	// Slash display-occasion flags, bus-backed with no fallback.
	SlashShowOn(event ShowOnEvent) (bool, error)
	SetSlashShowOn(event ShowOnEvent, value bool) error
}
