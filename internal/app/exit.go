package app

import (
	"errors"
	"os/exec"

	"go.trai.ch/buildbot/internal/core/domain"
)

// ExitCodeUsage is returned for configuration errors.
const ExitCodeUsage = 2

// ExitCode maps the result of a run to a process exit status.
// Failed tool invocations keep the status of the tool.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if domain.IsConfigError(err) {
		return ExitCodeUsage
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
