package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/buildbot/internal/adapters/shell"
	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/buildbot/internal/core/ports"
	"go.trai.ch/buildbot/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Info("line1").Times(1),
		mockLogger.EXPECT().Info("line2").Times(1),
	)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	// Partial writes are buffered until the newline arrives.
	mockLogger.EXPECT().Info("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf part1; sleep 0.1; echo part2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_TrailingPartialLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("no newline").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf 'no newline'"},
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_EnvironmentOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("verbose=1").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo verbose=$VERBOSE"},
		Env:  map[string]string{"VERBOSE": "1"},
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	// macOS temp dirs resolve through /private; compare the resolved form.
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(resolved).Times(1)

	executor := shell.NewExecutor(mockLogger)

	err = executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "pwd -P"},
		Dir:  dir,
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_HermeticPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("success").Times(1)

	toolDir := t.TempDir()
	toolPath := filepath.Join(toolDir, "my-build-tool")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(toolPath, []byte("#!/bin/sh\necho success\n"), 0o700))

	executor := shell.NewExecutor(mockLogger)

	// PATH from the command environment is used for lookup.
	err := executor.Execute(context.Background(), domain.Command{
		Name: "my-build-tool",
		Env:  map[string]string{"PATH": toolDir + string(os.PathListSeparator) + os.Getenv("PATH")},
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo broken >&2; exit 42"},
	})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "command failed"), "unexpected error: %v", err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 42, exitErr.ExitCode())
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Command{Name: "nonexistent-command-xyz123"})
	require.Error(t, err)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))
	require.NoError(t, executor.Execute(context.Background(), domain.Command{}))
}

func TestExecutor_Execute_CopiesToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("hello to stdout").Times(1)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	var stdoutBuf, stderrBuf bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stdout().Return(&stdoutBuf).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	executor := shell.NewExecutor(mockLogger)
	ctx := ports.ContextWithVertex(context.Background(), mockVertex)

	err := executor.Execute(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello to stdout; echo hello to stderr >&2"},
	})
	require.NoError(t, err)

	require.Contains(t, stdoutBuf.String(), "hello to stdout")
	require.Contains(t, stderrBuf.String(), "hello to stderr")
}

func TestExecutor_Execute_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := executor.Execute(ctx, domain.Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	require.Error(t, err)
}
