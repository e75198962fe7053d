package asusctl

import "strings"

// parseSystemInfo extracts version and hardware identity from the
// `asusctl --version` banner. Unmatched labels leave fields empty; this
// parser never fails.
func parseSystemInfo(output string) SystemInfo {
	var info SystemInfo

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		if version, ok := strings.CutPrefix(line, "asusctl version:"); ok {
			info.AsusctlVersion = strings.TrimSpace(version)
		} else if family, ok := strings.CutPrefix(line, "Product family:"); ok {
			info.ProductFamily = strings.TrimSpace(family)
		} else if board, ok := strings.CutPrefix(line, "Board name:"); ok {
			info.BoardName = strings.TrimSpace(board)
		}
	}

	return info
}

// parseProfileState extracts the three profile assignments from the
// `asusctl profile --profile-get` report. A missing line keeps the default
// profile; a line with an unrecognized profile name is a parse error.
func parseProfileState(output string) (ProfileState, error) {
	state := ProfileState{
		Active:    DefaultPowerProfile,
		OnAC:      DefaultPowerProfile,
		OnBattery: DefaultPowerProfile,
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		if rest, ok := strings.CutPrefix(line, "Active profile is"); ok {
			profile, err := ParsePowerProfile(strings.TrimSpace(rest))
			if err != nil {
				return state, err
			}
			state.Active = profile
		} else if rest, ok := strings.CutPrefix(line, "Profile on AC is"); ok {
			profile, err := ParsePowerProfile(strings.TrimSpace(rest))
			if err != nil {
				return state, err
			}
			state.OnAC = profile
		} else if rest, ok := strings.CutPrefix(line, "Profile on Battery is"); ok {
			profile, err := ParsePowerProfile(strings.TrimSpace(rest))
			if err != nil {
				return state, err
			}
			state.OnBattery = profile
		}
	}

	return state, nil
}

// parseKeyboardBrightness extracts the level from the CLI report line
// "Current keyboard led brightness: <Name>".
func parseKeyboardBrightness(output string) (KeyboardBrightness, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "Current keyboard led brightness:") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			return DefaultKeyboardBrightness, parseErr("missing brightness value")
		}
		return ParseKeyboardBrightnessLevel(strings.TrimSpace(parts[1]))
	}

	return DefaultKeyboardBrightness, parseErr("could not find brightness level in output")
}

// parseSupportedFeatures derives capability flags from the
// `asusctl --show-supported` dump. The dump is treated as a presence-test
// corpus, not structured data; level and mode discovery is scoped to the
// matching bracketed section and follows the fixed probe order.
func parseSupportedFeatures(output string) SupportedFeatures {
	features := SupportedFeatures{
		HasAura:           strings.Contains(output, "xyz.ljones.Aura"),
		HasPlatform:       strings.Contains(output, "xyz.ljones.Platform"),
		HasFanCurves:      strings.Contains(output, "xyz.ljones.FanCurves"),
		HasSlash:          strings.Contains(output, "xyz.ljones.Slash"),
		HasChargeControl:  strings.Contains(output, "ChargeControlEndThreshold"),
		HasThrottlePolicy: strings.Contains(output, "ThrottlePolicy"),
	}

	brightnessSection := extractSection(output, "Supported Keyboard Brightness:")
	for _, name := range []string{"Off", "Low", "Med", "High"} {
		if strings.Contains(brightnessSection, name) {
			level, err := ParseKeyboardBrightnessLevel(name)
			if err == nil {
				features.KeyboardBrightnessLevels = append(features.KeyboardBrightnessLevels, level)
			}
		}
	}

	auraSection := extractSection(output, "Supported Aura Modes:")
	for _, name := range []string{"Static", "Breathe", "Pulse"} {
		if strings.Contains(auraSection, name) {
			mode, err := ParseAuraMode(name)
			if err == nil {
				features.AuraModes = append(features.AuraModes, mode)
			}
		}
	}

	return features
}

// extractSection returns the text after the first line containing header, up
// through the line on which the running '[' minus ']' count returns to zero
// while that line contains a ']'. A missing header yields an empty string;
// unbalanced brackets consume the rest of the input.
func extractSection(output, header string) string {
	var section strings.Builder
	inSection := false
	bracketDepth := 0

	for _, line := range strings.Split(output, "\n") {
		if !inSection {
			if strings.Contains(line, header) {
				inSection = true
			}
			continue
		}

		bracketDepth += strings.Count(line, "[")
		bracketDepth -= strings.Count(line, "]")

		section.WriteString(line)
		section.WriteString("\n")

		if bracketDepth <= 0 && strings.Contains(line, "]") {
			break
		}
	}

	return section.String()
}
