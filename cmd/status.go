package cmd

import (
	"fmt"

	"github.com/Bl4ckspell7/asusctl-gui/internal/asusctl"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current device state",
	Long:  `Reads every panel field once and prints it. Fields whose source is unavailable are reported as such.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus() error {
	client := newClient()

	if info, err := client.SystemInfo(); err != nil {
		fmt.Printf("System:              unavailable (%v)\n", err)
	} else {
		fmt.Printf("asusctl version:     %s\n", valueOrDash(info.AsusctlVersion))
		fmt.Printf("Product family:      %s\n", valueOrDash(info.ProductFamily))
		fmt.Printf("Board name:          %s\n", valueOrDash(info.BoardName))
	}

	if state, err := client.ProfileState(); err != nil {
		fmt.Printf("Profiles:            unavailable (%v)\n", err)
	} else {
		fmt.Printf("Active profile:      %s\n", state.Active)
		fmt.Printf("Profile on AC:       %s\n", state.OnAC)
		fmt.Printf("Profile on battery:  %s\n", state.OnBattery)
	}

	if brightness, err := client.KeyboardBrightness(); err != nil {
		fmt.Printf("Keyboard backlight:  unavailable (%v)\n", err)
	} else {
		fmt.Printf("Keyboard backlight:  %s\n", brightness)
	}

	if limit, err := client.ChargeLimit(); err != nil {
		fmt.Printf("Charge limit:        unavailable (%v)\n", err)
	} else {
		fmt.Printf("Charge limit:        %d%%\n", limit)
	}

	if slash, err := client.SlashState(); err != nil {
		fmt.Printf("Slash LED bar:       unavailable (%v)\n", err)
	} else {
		fmt.Printf("Slash enabled:       %t\n", slash.Enabled)
		fmt.Printf("Slash brightness:    %d\n", slash.Brightness)
		fmt.Printf("Slash interval:      %d\n", slash.Interval)
		fmt.Printf("Slash mode:          %s\n", slash.Mode)
	}

	for _, event := range asusctl.ShowOnEvents() {
		if value, err := client.SlashShowOn(event); err == nil {
			fmt.Printf("Slash show on %-8s %t\n", event.String()+":", value)
		}
	}

	return nil
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
