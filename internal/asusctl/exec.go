package asusctl

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/Bl4ckspell7/asusctl-gui/internal/errors"
	"github.com/Bl4ckspell7/asusctl-gui/internal/logger"
)

// commandResult is the captured outcome of one finished subprocess. Invalid
// byte sequences are replaced, never reported as errors.
type commandResult struct {
	stdout   string
	stderr   string
	exitCode int
}

// commandRunner spawns one subprocess and waits for it. The returned error is
// a spawn failure only; a process that ran to completion reports its exit
// code in the result instead.
type commandRunner func(name string, args ...string) (commandResult, error)

func runCommand(name string, args ...string) (commandResult, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := commandResult{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, err
		}
		res.exitCode = exitErr.ExitCode()
	}

	res.stdout = strings.ToValidUTF8(stdout.String(), "�")
	res.stderr = strings.ToValidUTF8(stderr.String(), "�")

	return res, nil
}

// runAsusctl invokes the asusctl binary and returns its stdout.
//
// asusctl often exits non-zero while still printing usable data, so a bad
// exit status alone is not a failure. Stderr mentioning asusd or a refused
// connection means the daemon is gone, whatever the exit code says.
func (c *Client) runAsusctl(args ...string) (string, error) {
	res, err := c.run(c.asusctlPath, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", errFactory.New(ErrNotInstalled)
		}
		return "", errFactory.Wrap(ErrCommandFailed, err)
	}

	if strings.Contains(res.stderr, "Connection refused") || strings.Contains(res.stderr, "asusd") {
		return "", errFactory.New(ErrServiceNotRunning)
	}

	if res.exitCode != 0 {
		logger.Debug().
			Int("exit_code", res.exitCode).
			Strs("args", args).
			Msg("asusctl exited non-zero, keeping stdout")
	}

	return res.stdout, nil
}
