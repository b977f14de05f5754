package ports

import (
	"context"

	"go.trai.ch/buildbot/internal/core/domain"
)

// BuildTool is the set of build steps actions are composed of.
// Every call either completes or returns the tool's failure.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_tool.go -destination=mocks/mock_build_tool.go -package=mocks
type BuildTool interface {
	// GenerateBuildFiles configures the build directory from the source tree.
	GenerateBuildFiles(ctx context.Context, cfg domain.ResolvedConfig) error

	// WriteDependencyGraph writes the target dependency graph into the build directory.
	WriteDependencyGraph(ctx context.Context, cfg domain.ResolvedConfig) error

	// Compile runs the given target of the generated build files.
	Compile(ctx context.Context, cfg domain.ResolvedConfig, target domain.Target) error

	// WriteBuildHeader writes a header describing the configuration that was built.
	WriteBuildHeader(ctx context.Context, cfg domain.ResolvedConfig) error

	// GenerateDocumentation generates the API documentation into the documentation prefix.
	GenerateDocumentation(ctx context.Context, cfg domain.ResolvedConfig) error

	// RunTestSuite runs the test suite registered with the generated build files.
	RunTestSuite(ctx context.Context, cfg domain.ResolvedConfig) error
}
