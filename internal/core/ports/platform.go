package ports

import "go.trai.ch/buildbot/internal/core/domain"

// PlatformDetector names the platform build and install directories are scoped by.
//
//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type PlatformDetector interface {
	// Detect returns the platform identifier for the host and the given build settings.
	// It must not have side effects and must return the same value for the same inputs.
	Detect(buildType domain.BuildType, block domain.BuildBlock, staticLinkage bool) (string, error)
}
