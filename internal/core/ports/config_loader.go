package ports

import "go.trai.ch/buildbot/internal/core/domain"

// ConfigLoader defines the interface for loading option profiles and environment files.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadProfile reads the option profile at path.
	// When required is false a missing file yields a nil profile and no error.
	LoadProfile(path string, required bool) (*domain.Profile, error)

	// LoadEnvironment reads KEY=VALUE pairs from a dotenv file.
	LoadEnvironment(path string) (map[string]string, error)
}
