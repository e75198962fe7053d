package cmd

import (
	"fmt"

	"github.com/Bl4ckspell7/asusctl-gui/internal/asusctl"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile [quiet|balanced|performance]",
	Short: "Get or set the platform power profile",
	Long: `Without an argument, prints the active, AC and battery profile
assignments. With an argument, applies the profile through powerprofilesctl
when available, falling back to asusctl.`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		if len(args) == 0 {
			state, err := client.ProfileState()
			if err != nil {
				return err
			}
			fmt.Printf("Active profile:      %s\n", state.Active)
			fmt.Printf("Profile on AC:       %s\n", state.OnAC)
			fmt.Printf("Profile on battery:  %s\n", state.OnBattery)
			return nil
		}

		profile, err := asusctl.ParsePowerProfile(args[0])
		if err != nil {
			return err
		}
		return client.SetProfile(profile)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
