package asusctl

import (
	"os"
	"strconv"
	"strings"
)

// parseSlashConfigFile reads the asusd slash.ron file and extracts the LED
// bar state by line-prefix matching. This is the fallback source when the
// Slash bus object is unreachable, and the only source for the mode.
func parseSlashConfigFile(path string) (SlashState, error) {
	state := SlashState{Mode: DefaultSlashMode}

	content, err := os.ReadFile(path)
	if err != nil {
		return state, errFactory.WithData(ErrParseError, "failed to read slash config: "+err.Error())
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "enabled:"):
			state.Enabled = strings.Contains(line, "true")
		case strings.HasPrefix(line, "brightness:"):
			if val, ok := extractNumber(line); ok {
				state.Brightness = uint8(val)
			}
		case strings.HasPrefix(line, "display_interval:"):
			if val, ok := extractNumber(line); ok {
				state.Interval = uint8(val)
			}
		case strings.HasPrefix(line, "display_mode:"):
			if modeStr, ok := extractStringValue(line); ok {
				mode, err := ParseSlashMode(modeStr)
				if err != nil {
					mode = DefaultSlashMode
				}
				state.Mode = mode
			}
		}
	}

	return state, nil
}

// extractNumber pulls the value out of a line like "brightness: 255,".
// Out-of-byte-range values are truncated by the callers, not rejected here.
func extractNumber(line string) (uint32, bool) {
	raw, ok := extractStringValue(line)
	if !ok {
		return 0, false
	}

	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(val), true
}

// extractStringValue pulls the value out of a line like
// "display_mode: BitStream,".
func extractStringValue(line string) (string, bool) {
	_, rest, found := strings.Cut(line, ":")
	if !found {
		return "", false
	}

	return strings.TrimSuffix(strings.TrimSpace(rest), ","), true
}
