// Package config provides the option profile and environment file loader for buildbot.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/buildbot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML profiles and dotenv files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// LoadProfile reads the option profile at path.
// A missing file yields a nil profile unless required is set.
func (l *Loader) LoadProfile(path string, required bool) (*domain.Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil, nil //nolint:nilnil // A missing optional profile is not an error
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProfileReadFailed.Error()), "path", path)
	}

	profile, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	// env_file is relative to the profile, not to the working directory.
	if profile.EnvFile != nil && *profile.EnvFile != "" && !filepath.IsAbs(*profile.EnvFile) {
		resolved := filepath.Join(filepath.Dir(path), *profile.EnvFile)
		profile.EnvFile = &resolved
	}

	l.Logger.Info("loaded profile " + path)
	return profile, nil
}

// Parse decodes a profile document. Unknown keys are rejected.
func Parse(data []byte) (*domain.Profile, error) {
	var file ProfileFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrProfileParseFailed.Error())
	}

	return &domain.Profile{
		Action:        file.Action,
		BuildType:     file.BuildType,
		BuildBlock:    file.BuildBlock,
		BuildPrefix:   file.BuildPrefix,
		InstallPrefix: file.InstallPrefix,
		DocPrefix:     file.DocPrefix,
		Doxyfile:      file.Doxyfile,
		Jobs:          file.Jobs,
		StaticLinkage: file.StaticLinkage,
		DebugBuild:    file.DebugBuild,
		Version:       file.Version,
		EnvFile:       file.EnvFile,
		Environment:   file.Environment,
	}, nil
}

// LoadEnvironment reads the dotenv file at path.
func (l *Loader) LoadEnvironment(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", path)
	}
	return env, nil
}
