package asusctl

import "github.com/Bl4ckspell7/asusctl-gui/internal/errors"

// The four error kinds every operation in this package returns, plus the
// out-of-range rejection applied before a subprocess is ever spawned.
const (
	ErrNotInstalled      = errors.ErrorCode("asusctl_not_installed")
	ErrServiceNotRunning = errors.ErrorCode("asusd_service_not_running")
	ErrCommandFailed     = errors.ErrorCode("asusctl_command_failed")
	ErrParseError        = errors.ErrorCode("asusctl_parse_error")
	ErrOutOfRange        = errors.ErrorCode("asusctl_value_out_of_range")
)

var errFactory = errors.New()

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrNotInstalled:      "asusctl is not installed",
		ErrServiceNotRunning: "asusd service is not running",
		ErrCommandFailed:     "Command failed",
		ErrParseError:        "Parse error",
		ErrOutOfRange:        "Value out of range",
	})
}

// IsNotInstalled reports whether err means the asusctl binary was not found.
func IsNotInstalled(err error) bool {
	return errors.HasCode(err, ErrNotInstalled)
}

// IsServiceNotRunning reports whether err means the asusd service or one of
// its bus objects is absent.
func IsServiceNotRunning(err error) bool {
	return errors.HasCode(err, ErrServiceNotRunning)
}

// IsCommandFailed reports whether err is an unclassified execution failure.
func IsCommandFailed(err error) bool {
	return errors.HasCode(err, ErrCommandFailed)
}

// IsParseError reports whether err means output did not match the expected
// grammar.
func IsParseError(err error) bool {
	return errors.HasCode(err, ErrParseError)
}

// IsOutOfRange reports whether err is a rejected out-of-range write value.
func IsOutOfRange(err error) bool {
	return errors.HasCode(err, ErrOutOfRange)
}
