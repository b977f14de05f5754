package app

import (
	"os"
	"path/filepath"

	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/zerr"
)

// DetectWorkspace locates the current invocation.
// The project root is the parent of the directory holding the resolved executable.
func DetectWorkspace() (domain.Workspace, error) {
	wd, err := os.Getwd()
	if err != nil {
		return domain.Workspace{}, zerr.Wrap(err, domain.ErrWorkspaceDetectionFailed.Error())
	}

	program, err := os.Executable()
	if err != nil {
		return domain.Workspace{}, zerr.Wrap(err, domain.ErrWorkspaceDetectionFailed.Error())
	}

	return WorkspaceFor(wd, program)
}

// WorkspaceFor builds the workspace for a program path invoked from wd.
func WorkspaceFor(wd, program string) (domain.Workspace, error) {
	resolved, err := filepath.EvalSymlinks(program)
	if err != nil {
		return domain.Workspace{}, zerr.With(
			zerr.Wrap(err, domain.ErrWorkspaceDetectionFailed.Error()), "program", program,
		)
	}

	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return domain.Workspace{}, zerr.Wrap(err, domain.ErrWorkspaceDetectionFailed.Error())
	}

	return domain.Workspace{
		WorkDir:     wd,
		ProjectRoot: filepath.Dir(filepath.Dir(resolved)),
	}, nil
}
