// Package cmake implements the build tool adapter on top of CMake, make and ctest.
package cmake

import (
	"context"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/buildbot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildTool = (*Tool)(nil)

const (
	// DependencyGraphFile is the graphviz file written into the build prefix.
	DependencyGraphFile = "dependencies.dot"
	// DependencyImageFile is the rendering of DependencyGraphFile, when dot is available.
	DependencyImageFile = "dependencies.png"
)

// Tool implements ports.BuildTool by running CMake-generated builds through an executor.
type Tool struct {
	executor ports.Executor
	logger   ports.Logger
	lookPath func(string) (string, error)
}

// New creates a Tool.
func New(executor ports.Executor, logger ports.Logger) *Tool {
	return &Tool{
		executor: executor,
		logger:   logger,
		lookPath: exec.LookPath,
	}
}

// WithLookPath replaces the function used to find optional tools such as dot.
func (t *Tool) WithLookPath(fn func(string) (string, error)) *Tool {
	t.lookPath = fn
	return t
}

// GenerateBuildFiles creates the build prefix and configures it from the source directory.
func (t *Tool) GenerateBuildFiles(ctx context.Context, cfg domain.ResolvedConfig) error {
	if err := mkdir(cfg.BuildPrefix); err != nil {
		return err
	}
	return t.executor.Execute(ctx, command(cfg, "cmake", ConfigureArgs(cfg)...))
}

// ConfigureArgs returns the cmake arguments that configure cfg.BuildPrefix.
func ConfigureArgs(cfg domain.ResolvedConfig) []string {
	args := []string{
		"-S", cfg.SourceDir,
		"-B", cfg.BuildPrefix,
		"-DCMAKE_BUILD_TYPE=" + cfg.BuildType.CMakeName(),
		"-DCMAKE_INSTALL_PREFIX=" + cfg.InstallPrefix,
		"-DBUILD_BLOCK=" + string(cfg.BuildBlock),
		"-DBUILD_SHARED_LIBS=" + onOff(!cfg.StaticLinkage),
		"-DPROJECT_VERSION_STRING=" + cfg.Version,
		"-DBUILD_PLATFORM=" + cfg.Platform,
	}
	if cfg.Verbose {
		args = append(args, "-DCMAKE_VERBOSE_MAKEFILE=ON")
	}
	return args
}

// WriteDependencyGraph asks CMake for the target graph and renders it when dot is installed.
func (t *Tool) WriteDependencyGraph(ctx context.Context, cfg domain.ResolvedConfig) error {
	dotFile := filepath.Join(cfg.BuildPrefix, DependencyGraphFile)
	if err := t.executor.Execute(ctx, command(cfg, "cmake", "--graphviz="+dotFile, ".")); err != nil {
		return err
	}

	if _, err := t.lookPath("dot"); err != nil {
		t.logger.Warn("dot not found, skipping " + DependencyImageFile)
		return nil
	}
	image := filepath.Join(cfg.BuildPrefix, DependencyImageFile)
	return t.executor.Execute(ctx, command(cfg, "dot", "-Tpng", "-o", image, dotFile))
}

// Compile runs make for target with the configured job count.
func (t *Tool) Compile(ctx context.Context, cfg domain.ResolvedConfig, target domain.Target) error {
	cmd := command(cfg, "make", "-j"+strconv.Itoa(cfg.Jobs), string(target))
	if cfg.Verbose {
		cmd.Env["VERBOSE"] = "1"
	}
	return t.executor.Execute(ctx, cmd)
}

// RunTestSuite runs ctest in the build prefix.
func (t *Tool) RunTestSuite(ctx context.Context, cfg domain.ResolvedConfig) error {
	args := []string{"-j" + strconv.Itoa(cfg.Jobs), "--output-on-failure"}
	if cfg.Verbose {
		args = append(args, "-V")
	}
	return t.executor.Execute(ctx, command(cfg, "ctest", args...))
}

// command builds an invocation run from the build prefix with the configured environment.
func command(cfg domain.ResolvedConfig, name string, args ...string) domain.Command {
	env := maps.Clone(cfg.Environment)
	if env == nil {
		env = make(map[string]string)
	}
	return domain.Command{
		Name: name,
		Args: args,
		Dir:  cfg.BuildPrefix,
		Env:  env,
	}
}

func mkdir(path string) error {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildDirCreateFailed.Error()), "path", path)
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
