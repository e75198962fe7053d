package asusctl

import (
	"os/exec"
	"strconv"

	"github.com/Bl4ckspell7/asusctl-gui/internal/errors"
	"github.com/Bl4ckspell7/asusctl-gui/internal/logger"
)

const defaultSlashConfigPath = "/etc/asusd/slash.ron"

const (
	minChargeLimit   = 20
	maxChargeLimit   = 100
	maxSlashInterval = 5
)

// Client talks to asusd through the asusctl and busctl binaries. The zero
// tool paths resolve through $PATH.
type Client struct {
	asusctlPath          string
	busctlPath           string
	powerProfilesCtlPath string
	slashConfigPath      string

	run commandRunner
}

// Option configures a Client.
type Option func(*Client)

// WithAsusctlPath overrides the asusctl binary location.
func WithAsusctlPath(path string) Option {
	return func(c *Client) { c.asusctlPath = path }
}

// WithBusctlPath overrides the busctl binary location.
func WithBusctlPath(path string) Option {
	return func(c *Client) { c.busctlPath = path }
}

// WithPowerProfilesCtlPath overrides the powerprofilesctl binary location.
func WithPowerProfilesCtlPath(path string) Option {
	return func(c *Client) { c.powerProfilesCtlPath = path }
}

// WithSlashConfigPath overrides the slash.ron fallback file location.
func WithSlashConfigPath(path string) Option {
	return func(c *Client) { c.slashConfigPath = path }
}

func withRunner(run commandRunner) Option {
	return func(c *Client) { c.run = run }
}

// NewClient builds a Client with the given overrides.
func NewClient(opts ...Option) *Client {
	c := &Client{
		asusctlPath:          "asusctl",
		busctlPath:           "busctl",
		powerProfilesCtlPath: "powerprofilesctl",
		slashConfigPath:      defaultSlashConfigPath,
		run:                  runCommand,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Controller = (*Client)(nil)

// SystemInfo reads version, product family and board name.
func (c *Client) SystemInfo() (SystemInfo, error) {
	output, err := c.runAsusctl("--version")
	if err != nil {
		return SystemInfo{}, err
	}
	return parseSystemInfo(output), nil
}

// SupportedFeatures reads the capability dump for this laptop.
func (c *Client) SupportedFeatures() (SupportedFeatures, error) {
	output, err := c.runAsusctl("--show-supported")
	if err != nil {
		return SupportedFeatures{}, err
	}
	return parseSupportedFeatures(output), nil
}

// KeyboardBrightness reads the current backlight level from the Aura bus
// object. The property encodes the level ordinal.
func (c *Client) KeyboardBrightness() (KeyboardBrightness, error) {
	output, err := c.readProperty(auraPath, auraInterface, "Brightness")
	if err != nil {
		return DefaultKeyboardBrightness, err
	}

	value, err := parseBusUint(output)
	if err != nil {
		return DefaultKeyboardBrightness, err
	}

	if value > uint32(BrightnessHigh) {
		return DefaultKeyboardBrightness, parseErr("unknown brightness value: %d", value)
	}
	return KeyboardBrightness(value), nil
}

// SetKeyboardBrightness sets the backlight level.
func (c *Client) SetKeyboardBrightness(level KeyboardBrightness) error {
	_, err := c.runAsusctl("--kbd-bright", level.String())
	return err
}

// ProfileState reads the active, AC and battery profile assignments.
func (c *Client) ProfileState() (ProfileState, error) {
	output, err := c.runAsusctl("profile", "--profile-get")
	if err != nil {
		return ProfileState{}, err
	}
	return parseProfileState(output)
}

// profileSetter is one strategy for applying a platform profile.
type profileSetter struct {
	name  string
	apply func(c *Client, profile PowerProfile) error
}

// Setter strategies in fallback order. powerprofilesctl goes first so the
// desktop's power-profiles-daemon stays in agreement; asusctl is the
// backstop. Only the final outcome is surfaced.
var profileSetters = []profileSetter{
	{
		name: "powerprofilesctl",
		apply: func(c *Client, profile PowerProfile) error {
			return c.setProfilePPD(profile)
		},
	},
	{
		name: "asusctl",
		apply: func(c *Client, profile PowerProfile) error {
			_, err := c.runAsusctl("profile", "--profile-set", profile.String())
			return err
		},
	},
}

// SetProfile applies the profile through the first setter strategy that
// succeeds. Earlier failures are swallowed.
func (c *Client) SetProfile(profile PowerProfile) error {
	var lastErr error
	for _, setter := range profileSetters {
		if err := setter.apply(c, profile); err != nil {
			lastErr = err
			continue
		}
		logger.Info().
			Str("profile", profile.String()).
			Str("tool", setter.name).
			Msg("Set power profile")
		return nil
	}
	return lastErr
}

// setProfilePPD applies the profile through power-profiles-daemon, using its
// own three-value vocabulary.
func (c *Client) setProfilePPD(profile PowerProfile) error {
	res, err := c.run(c.powerProfilesCtlPath, "set", profile.PPDName())
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return errFactory.New(ErrNotInstalled)
		}
		return errFactory.Wrap(ErrCommandFailed, err)
	}

	if res.exitCode != 0 {
		return errFactory.WithData(ErrCommandFailed, res.stderr)
	}
	return nil
}

// ChargeLimit reads the battery charge control threshold from the Platform
// bus object.
func (c *Client) ChargeLimit() (uint8, error) {
	output, err := c.readProperty(platformPath, platformInterface, "ChargeControlEndThreshold")
	if err != nil {
		return 0, err
	}
	return parseBusByte(output)
}

// SetChargeLimit sets the charge control threshold. Values outside 20-100
// are rejected before any subprocess is spawned.
func (c *Client) SetChargeLimit(limit uint8) error {
	if limit < minChargeLimit || limit > maxChargeLimit {
		return errFactory.WithData(ErrOutOfRange, strconv.Itoa(int(limit)))
	}

	_, err := c.runAsusctl("--chg-limit", strconv.Itoa(int(limit)))
	return err
}

// SlashEnabled reads whether the LED bar is on, falling back to the config
// file on any bus error.
func (c *Client) SlashEnabled() (bool, error) {
	enabled, err := c.slashEnabledBus()
	if err == nil {
		return enabled, nil
	}

	state, err := parseSlashConfigFile(c.slashConfigPath)
	if err != nil {
		return false, err
	}
	return state.Enabled, nil
}

// SetSlashEnabled turns the LED bar on or off.
func (c *Client) SetSlashEnabled(enabled bool) error {
	flag := "--enable"
	if !enabled {
		flag = "--disable"
	}
	_, err := c.runAsusctl("slash", flag)
	return err
}

// SlashBrightness reads the LED bar brightness, falling back to the config
// file on any bus error.
func (c *Client) SlashBrightness() (uint8, error) {
	brightness, err := c.slashByteBus("Brightness")
	if err == nil {
		return brightness, nil
	}

	state, err := parseSlashConfigFile(c.slashConfigPath)
	if err != nil {
		return 0, err
	}
	return state.Brightness, nil
}

// SetSlashBrightness sets the LED bar brightness.
func (c *Client) SetSlashBrightness(brightness uint8) error {
	_, err := c.runAsusctl("slash", "--brightness", strconv.Itoa(int(brightness)))
	return err
}

// SlashInterval reads the animation interval, falling back to the config
// file on any bus error.
func (c *Client) SlashInterval() (uint8, error) {
	interval, err := c.slashByteBus("Interval")
	if err == nil {
		return interval, nil
	}

	state, err := parseSlashConfigFile(c.slashConfigPath)
	if err != nil {
		return 0, err
	}
	return state.Interval, nil
}

// SetSlashInterval sets the animation interval. Values above 5 are rejected
// before any subprocess is spawned.
func (c *Client) SetSlashInterval(interval uint8) error {
	if interval > maxSlashInterval {
		return errFactory.WithData(ErrOutOfRange, strconv.Itoa(int(interval)))
	}

	_, err := c.runAsusctl("slash", "--interval", strconv.Itoa(int(interval)))
	return err
}

// SlashMode reads the animation mode from the config file. The bus exposes
// only a numeric code with no stable mapping, so it is never consulted.
func (c *Client) SlashMode() (SlashMode, error) {
	state, err := parseSlashConfigFile(c.slashConfigPath)
	if err != nil {
		return DefaultSlashMode, err
	}
	return state.Mode, nil
}

// SetSlashMode sets the animation mode.
func (c *Client) SetSlashMode(mode SlashMode) error {
	_, err := c.runAsusctl("slash", "--mode", mode.String())
	return err
}

// SlashState reads the whole LED bar aggregate through the per-field read
// policy.
func (c *Client) SlashState() (SlashState, error) {
	enabled, err := c.SlashEnabled()
	if err != nil {
		return SlashState{Mode: DefaultSlashMode}, err
	}

	brightness, err := c.SlashBrightness()
	if err != nil {
		return SlashState{Mode: DefaultSlashMode}, err
	}

	interval, err := c.SlashInterval()
	if err != nil {
		return SlashState{Mode: DefaultSlashMode}, err
	}

	mode, err := c.SlashMode()
	if err != nil {
		mode = DefaultSlashMode
	}

	return SlashState{
		Enabled:    enabled,
		Brightness: brightness,
		Interval:   interval,
		Mode:       mode,
	}, nil
}

// SlashShowOn reads one display-occasion flag from the bus. There is no
// fallback; bus errors reach the caller directly.
func (c *Client) SlashShowOn(event ShowOnEvent) (bool, error) {
	output, err := c.readProperty(slashPath, slashInterface, event.propertyName())
	if err != nil {
		return false, err
	}
	return parseBusBool(output)
}

// SetSlashShowOn sets one display-occasion flag.
func (c *Client) SetSlashShowOn(event ShowOnEvent, value bool) error {
	_, err := c.runAsusctl("slash", event.cliFlag(), strconv.FormatBool(value))
	return err
}

func (c *Client) slashEnabledBus() (bool, error) {
	output, err := c.readProperty(slashPath, slashInterface, "Enabled")
	if err != nil {
		return false, err
	}
	return parseBusBool(output)
}

func (c *Client) slashByteBus(property string) (uint8, error) {
	output, err := c.readProperty(slashPath, slashInterface, property)
	if err != nil {
		return 0, err
	}
	return parseBusByte(output)
}
