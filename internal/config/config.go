package config

import (
	"os"

	"github.com/Bl4ckspell7/asusctl-gui/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = "info"

	defaultInterval        = 5
	defaultTelemetryDB     = "/var/lib/asusctl-gui/telemetry.db"
	defaultSlashConfigPath = "/etc/asusd/slash.ron"
)

// Config holds all settings of the application. Tool paths are overridable
// so tests and unusual installations can point at alternate binaries.
type Config struct {
	Interval    int    `mapstructure:"interval"`
	LogLevel    string `mapstructure:"log_level"`
	Debug       bool   `mapstructure:"debug"`
	Verbose     bool   `mapstructure:"verbose"`
	Telemetry   bool   `mapstructure:"telemetry"`
	TelemetryDB string `mapstructure:"database"`

	AsusctlPath          string `mapstructure:"asusctl_path"`
	BusctlPath           string `mapstructure:"busctl_path"`
	PowerProfilesCtlPath string `mapstructure:"powerprofilesctl_path"`
	SlashConfigPath      string `mapstructure:"slash_config"`
}

// Load reads configuration from the given file, or when empty from
// ASUSCTL_GUI_CONFIG and the default search paths. Command line flags, when
// given, take precedence over file values.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("telemetry", false)
	v.SetDefault("database", defaultTelemetryDB)
	v.SetDefault("asusctl_path", "asusctl")
	v.SetDefault("busctl_path", "busctl")
	v.SetDefault("powerprofilesctl_path", "powerprofilesctl")
	v.SetDefault("slash_config", defaultSlashConfigPath)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	if configFile == "" {
		configFile = os.Getenv("ASUSCTL_GUI_CONFIG")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	} else {
		v.SetConfigName("asusctl-gui")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath("$HOME/.config/asusctl-gui")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if !isValidLogLevel(config.LogLevel) {
		return nil, errFactory.WithData(errors.ErrInvalidLogLevel, config.LogLevel)
	}

	if config.Interval <= 0 {
		return nil, errFactory.WithData(errors.ErrInvalidConfig, config.Interval)
	}

	return config, nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warning", "error":
		return true
	default:
		return false
	}
}
