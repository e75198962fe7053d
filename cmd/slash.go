package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Bl4ckspell7/asusctl-gui/internal/asusctl"
	"github.com/spf13/cobra"
)

var slashCmd = &cobra.Command{
	Use:   "slash",
	Short: "Slash LED bar related commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		state, err := client.SlashState()
		if err != nil {
			return err
		}
		fmt.Printf("Enabled:     %t\n", state.Enabled)
		fmt.Printf("Brightness:  %d\n", state.Brightness)
		fmt.Printf("Interval:    %d\n", state.Interval)
		fmt.Printf("Mode:        %s\n", state.Mode)
		return nil
	},
}

var slashOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable the LED bar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newClient().SetSlashEnabled(true)
	},
}

var slashOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable the LED bar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newClient().SetSlashEnabled(false)
	},
}

var slashBrightnessCmd = &cobra.Command{
	Use:   "brightness [0-255]",
	Short: "Get or set the LED bar brightness",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		if len(args) == 0 {
			brightness, err := client.SlashBrightness()
			if err != nil {
				return err
			}
			fmt.Println(brightness)
			return nil
		}

		brightness, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return fmt.Errorf("brightness must be a number between 0 and 255: %q", args[0])
		}
		return client.SetSlashBrightness(uint8(brightness))
	},
}

var slashIntervalCmd = &cobra.Command{
	Use:   "interval [0-5]",
	Short: "Get or set the animation interval",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		if len(args) == 0 {
			interval, err := client.SlashInterval()
			if err != nil {
				return err
			}
			fmt.Println(interval)
			return nil
		}

		interval, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return fmt.Errorf("interval must be a number between 0 and 5: %q", args[0])
		}
		return client.SetSlashInterval(uint8(interval))
	},
}

var slashModeCmd = &cobra.Command{
	Use:   "mode [name]",
	Short: "Get or set the animation mode",
	Long:  "Mode names are case-sensitive. Known modes: " + slashModeList() + ".",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		if len(args) == 0 {
			mode, err := client.SlashMode()
			if err != nil {
				return err
			}
			fmt.Println(mode)
			return nil
		}

		mode, err := asusctl.ParseSlashMode(args[0])
		if err != nil {
			return err
		}
		return client.SetSlashMode(mode)
	},
}

var slashShowOnCmd = &cobra.Command{
	Use:   "show-on <event> [true|false]",
	Short: "Get or set a display-occasion flag",
	Long:  "Events: boot, shutdown, sleep, battery, battery-warning.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		event, err := parseShowOnEvent(args[0])
		if err != nil {
			return err
		}

		client := newClient()
		if len(args) == 1 {
			value, err := client.SlashShowOn(event)
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		}

		value, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", args[1])
		}
		return client.SetSlashShowOn(event, value)
	},
}

func init() {
	slashCmd.AddCommand(slashOnCmd)
	slashCmd.AddCommand(slashOffCmd)
	slashCmd.AddCommand(slashBrightnessCmd)
	slashCmd.AddCommand(slashIntervalCmd)
	slashCmd.AddCommand(slashModeCmd)
	slashCmd.AddCommand(slashShowOnCmd)
	rootCmd.AddCommand(slashCmd)
}

func parseShowOnEvent(s string) (asusctl.ShowOnEvent, error) {
	for _, event := range asusctl.ShowOnEvents() {
		if event.String() == s {
			return event, nil
		}
	}
	return asusctl.ShowOnBoot, fmt.Errorf("unknown event %q, expected one of: boot, shutdown, sleep, battery, battery-warning", s)
}

func slashModeList() string {
	names := make([]string, 0, len(asusctl.SlashModes()))
	for _, mode := range asusctl.SlashModes() {
		names = append(names, mode.String())
	}
	return strings.Join(names, ", ")
}
