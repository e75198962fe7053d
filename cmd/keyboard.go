package cmd

import (
	"fmt"

	"github.com/Bl4ckspell7/asusctl-gui/internal/asusctl"
	"github.com/spf13/cobra"
)

var keyboardCmd = &cobra.Command{
	Use:   "keyboard [off|low|med|high]",
	Short: "Get or set the keyboard backlight level",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		if len(args) == 0 {
			brightness, err := client.KeyboardBrightness()
			if err != nil {
				return err
			}
			fmt.Println(brightness)
			return nil
		}

		level, err := asusctl.ParseKeyboardBrightnessLevel(args[0])
		if err != nil {
			return err
		}
		return client.SetKeyboardBrightness(level)
	},
}

func init() {
	rootCmd.AddCommand(keyboardCmd)
}
