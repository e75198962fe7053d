package asusctl

import (
	"strconv"
	"strings"
)

// D-Bus endpoints exposed by asusd.
const (
	busDestination = "xyz.ljones.Asusd"

	platformPath      = "/xyz/ljones"
	platformInterface = "xyz.ljones.Platform"

	auraPath      = "/xyz/ljones/aura/19b6_4_4"
	auraInterface = "xyz.ljones.Aura"

	slashPath      = "/xyz/ljones/aura/193b_5_5"
	slashInterface = "xyz.ljones.Slash"
)

// readProperty fetches one property through `busctl get-property` and returns
// the trimmed wire value, a one-letter type tag followed by the literal.
func (c *Client) readProperty(objectPath, interfaceName, property string) (string, error) {
	res, err := c.run(c.busctlPath, "get-property", busDestination, objectPath, interfaceName, property)
	if err != nil {
		return "", errFactory.WithData(ErrCommandFailed, "busctl failed: "+err.Error())
	}

	if res.exitCode != 0 {
		if strings.Contains(res.stderr, "No such") || strings.Contains(res.stderr, "not found") {
			return "", errFactory.New(ErrServiceNotRunning)
		}
		return "", errFactory.WithData(ErrCommandFailed, res.stderr)
	}

	return strings.TrimSpace(res.stdout), nil
}

// parseBusBool decodes a busctl boolean value like "b true".
func parseBusBool(output string) (bool, error) {
	value, ok := strings.CutPrefix(output, "b ")
	if !ok {
		return false, parseErr("expected boolean, got: %s", output)
	}

	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, parseErr("invalid boolean value: %s", value)
}

// parseBusByte decodes a busctl byte value like "y 80".
func parseBusByte(output string) (uint8, error) {
	value, ok := strings.CutPrefix(output, "y ")
	if !ok {
		return 0, parseErr("expected byte, got: %s", output)
	}

	n, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return 0, parseErr("invalid byte value: %s", value)
	}

	return uint8(n), nil
}

// parseBusUint decodes a busctl unsigned integer value like "u 3".
func parseBusUint(output string) (uint32, error) {
	value, ok := strings.CutPrefix(output, "u ")
	if !ok {
		return 0, parseErr("expected uint, got: %s", output)
	}

	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, parseErr("invalid uint value: %s", value)
	}

	return uint32(n), nil
}
