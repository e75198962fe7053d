package cmd

import (
	"fmt"
	"os"

	"github.com/Bl4ckspell7/asusctl-gui/internal/asusctl"
	"github.com/Bl4ckspell7/asusctl-gui/internal/config"
	"github.com/Bl4ckspell7/asusctl-gui/internal/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	debug   bool

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "asusctl-gui",
	Short: "Control panel for ASUS laptops running asusd",
	Long: `asusctl-gui reads and writes keyboard backlight, power profile,
charge limit and Slash LED bar settings by wrapping the asusctl and busctl
command line tools.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		if !cfg.Debug && !cfg.Verbose {
			switch cfg.LogLevel {
			case "debug":
				cfg.Debug = true
			case "info":
				cfg.Verbose = true
			}
		}

		logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is /etc/asusctl-gui.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "More verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "", false, "Enable debugging output")
}

// newClient builds the device client from the loaded configuration.
func newClient() *asusctl.Client {
	return asusctl.NewClient(
		asusctl.WithAsusctlPath(cfg.AsusctlPath),
		asusctl.WithBusctlPath(cfg.BusctlPath),
		asusctl.WithPowerProfilesCtlPath(cfg.PowerProfilesCtlPath),
		asusctl.WithSlashConfigPath(cfg.SlashConfigPath),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
