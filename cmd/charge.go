package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var chargeCmd = &cobra.Command{
	Use:   "charge [limit]",
	Short: "Get or set the battery charge limit (20-100)",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		if len(args) == 0 {
			limit, err := client.ChargeLimit()
			if err != nil {
				return err
			}
			fmt.Printf("%d%%\n", limit)
			return nil
		}

		limit, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return fmt.Errorf("charge limit must be a number between 20 and 100: %q", args[0])
		}
		return client.SetChargeLimit(uint8(limit))
	},
}

func init() {
	rootCmd.AddCommand(chargeCmd)
}
