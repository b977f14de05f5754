package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildbot/internal/app"
	"go.trai.ch/buildbot/internal/core/domain"
)

func TestWorkspaceFor(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	bin := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(bin, 0o750))
	program := filepath.Join(bin, "buildbot")
	require.NoError(t, os.WriteFile(program, nil, 0o600))

	ws, err := app.WorkspaceFor("/work", program)
	require.NoError(t, err)
	assert.Equal(t, domain.Workspace{WorkDir: "/work", ProjectRoot: root}, ws)
}

func TestWorkspaceFor_FollowsSymlinks(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	bin := filepath.Join(root, "project", "bin")
	require.NoError(t, os.MkdirAll(bin, 0o750))
	program := filepath.Join(bin, "buildbot")
	require.NoError(t, os.WriteFile(program, nil, 0o600))

	link := filepath.Join(root, "buildbot")
	require.NoError(t, os.Symlink(program, link))

	ws, err := app.WorkspaceFor("/work", link)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "project"), ws.ProjectRoot)
}

func TestWorkspaceFor_MissingProgram(t *testing.T) {
	_, err := app.WorkspaceFor("/work", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrWorkspaceDetectionFailed.Error())
}

func TestDetectWorkspace(t *testing.T) {
	ws, err := app.DetectWorkspace()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(ws.WorkDir))
	assert.True(t, filepath.IsAbs(ws.ProjectRoot))
}
