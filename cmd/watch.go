package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bl4ckspell7/asusctl-gui/internal/asusctl"
	"github.com/Bl4ckspell7/asusctl-gui/internal/errors"
	"github.com/Bl4ckspell7/asusctl-gui/internal/logger"
	"github.com/Bl4ckspell7/asusctl-gui/internal/pid"
	"github.com/Bl4ckspell7/asusctl-gui/internal/telemetry"
	"github.com/spf13/cobra"
)

var watchInterval int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the device state on an interval",
	Long: `Re-reads the device state every interval and logs it. There is no
change notification from asusd; each tick is a fresh probe. With telemetry
enabled, every snapshot is also recorded to the configured database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := pid.Write(); err != nil {
			return err
		}
		defer func() {
			if err := pid.Remove(); err != nil {
				logger.Error().Err(err).Msg("failed to remove PID file")
			}
		}()

		interval := cfg.Interval
		if cmd.Flags().Changed("interval") {
			interval = watchInterval
		}

		var collector telemetry.Collector
		if cfg.Telemetry {
			var err error
			collector, err = telemetry.NewService(telemetry.Config{DBPath: cfg.TelemetryDB})
			if err != nil {
				return err
			}
			defer func() {
				if err := collector.Close(); err != nil {
					logger.Error().Err(err).Msg("failed to close telemetry")
				}
			}()
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go handleSignals(cancel)

		return watchLoop(ctx, newClient(), collector, time.Duration(interval)*time.Second)
	},
}

func init() {
	watchCmd.Flags().IntVarP(&watchInterval, "interval", "i", 0, "Seconds between probes (overrides config)")
	rootCmd.AddCommand(watchCmd)
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func watchLoop(ctx context.Context, client *asusctl.Client, collector telemetry.Collector, interval time.Duration) error {
	// The interval may come from the flag, which bypasses config validation.
	// time.NewTicker panics on non-positive durations.
	if interval <= 0 {
		return errors.New().WithData(errors.ErrInvalidConfig, interval.String())
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Exiting...")
			return nil
		case <-ticker.C:
			snapshot := takeSnapshot(client)
			logSnapshot(snapshot)

			if collector != nil {
				if err := collector.Record(ctx, snapshot); err != nil {
					logger.Error().Err(err).Msg("failed to record snapshot")
				}
			}
		}
	}
}

// takeSnapshot reads every field once. A field whose source fails is left at
// its zero value and named in Missing; one dead source must not stop the
// loop.
func takeSnapshot(client *asusctl.Client) *telemetry.StateSnapshot {
	snapshot := &telemetry.StateSnapshot{Timestamp: time.Now()}

	if state, err := client.ProfileState(); err != nil {
		snapshot.Missing = append(snapshot.Missing, "profile")
	} else {
		snapshot.Profile = telemetry.ProfileSample{
			Active:    state.Active.String(),
			OnAC:      state.OnAC.String(),
			OnBattery: state.OnBattery.String(),
		}
	}

	if brightness, err := client.KeyboardBrightness(); err != nil {
		snapshot.Missing = append(snapshot.Missing, "keyboard")
	} else {
		snapshot.Keyboard = telemetry.KeyboardSample{Brightness: brightness.String()}
	}

	if limit, err := client.ChargeLimit(); err != nil {
		snapshot.Missing = append(snapshot.Missing, "charge")
	} else {
		snapshot.Charge = telemetry.ChargeSample{Limit: int(limit)}
	}

	if slash, err := client.SlashState(); err != nil {
		snapshot.Missing = append(snapshot.Missing, "slash")
	} else {
		snapshot.Slash = telemetry.SlashSample{
			Enabled:    slash.Enabled,
			Brightness: int(slash.Brightness),
			Interval:   int(slash.Interval),
			Mode:       slash.Mode.String(),
		}
	}

	return snapshot
}

func logSnapshot(snapshot *telemetry.StateSnapshot) {
	event := logger.Info().
		Str("profile", snapshot.Profile.Active).
		Str("keyboard", snapshot.Keyboard.Brightness).
		Int("charge_limit", snapshot.Charge.Limit).
		Bool("slash_enabled", snapshot.Slash.Enabled).
		Str("slash_mode", snapshot.Slash.Mode)

	if len(snapshot.Missing) > 0 {
		event = event.Strs("missing", snapshot.Missing)
	}
	event.Msg("Device state")
}
