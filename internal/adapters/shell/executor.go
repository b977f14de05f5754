// Package shell provides the external command executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/buildbot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor that logs tool output line by line.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs cmd with the process environment overlaid by cmd.Env.
// Stdout lines are logged at info, stderr lines at error. When ctx carries a
// vertex, the raw output is copied to it as well.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command) error {
	if cmd.Name == "" {
		return nil
	}

	env := resolveEnvironment(os.Environ(), cmd.Env)

	executable := cmd.Name
	if !filepath.IsAbs(executable) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // tool and args come from the resolved config
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Dir = cmd.Dir
	c.Env = env

	stdout := &lineWriter{emit: e.logger.Info}
	stderr := &lineWriter{emit: func(line string) { e.logger.Error(zerr.New(line)) }}
	var outW, errW io.Writer = stdout, stderr
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		outW = io.MultiWriter(stdout, vertex.Stdout())
		errW = io.MultiWriter(stderr, vertex.Stderr())
	}
	c.Stdout = outW
	c.Stderr = errW

	runErr := c.Run()
	stdout.Flush()
	stderr.Flush()

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err := zerr.With(zerr.Wrap(runErr, domain.ErrCommandFailed.Error()), "command", cmd.String())
		return zerr.With(err, "exit_code", exitCode)
	}

	return nil
}

// lineWriter buffers partial writes and emits complete lines.
type lineWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(string)
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Keep the partial line for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(strings.TrimRight(w.buf.String(), "\r\n"))
		w.buf.Reset()
	}
}

// resolveEnvironment overlays overrides on the system environment and returns sorted KEY=VALUE pairs.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by PATH in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
