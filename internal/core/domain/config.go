package domain

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
)

const (
	// DefaultVersion marks documentation when no version name was chosen.
	DefaultVersion = "?.?"
	// DefaultBuildPrefix is the build base directory, relative to the working directory.
	DefaultBuildPrefix = "build"
	// DefaultInstallPrefix is the install base directory, relative to the working directory.
	DefaultInstallPrefix = "install"
	// DefaultDocPrefix is the documentation directory, relative to the install prefix.
	DefaultDocPrefix = "share/doc"
	// SourceDirName is the directory under the project root holding the sources.
	SourceDirName = "src"
)

// DefaultDoxyfile returns the Doxyfile used when none is given: doc/Doxyfile under the project root.
func DefaultDoxyfile(projectRoot string) string {
	return filepath.Join(projectRoot, "doc", "Doxyfile")
}

// RawOptions holds the option values supplied by the user, before validation.
type RawOptions struct {
	Action        string
	BuildType     string
	BuildBlock    string
	BuildPrefix   string
	InstallPrefix string
	DocPrefix     string
	// Doxyfile is empty when the default location should be derived.
	Doxyfile      string
	Jobs          int
	StaticLinkage bool
	DebugBuild    bool
	Version       string
	// Args holds positional arguments left over after flag parsing.
	Args []string
	// Environment holds extra variables exported to every tool invocation.
	Environment map[string]string
}

// DefaultRawOptions returns the option defaults.
func DefaultRawOptions() RawOptions {
	return RawOptions{
		Action:        string(ActionGenerate),
		BuildType:     string(BuildTypeRelease),
		BuildBlock:    string(BuildBlockAll),
		BuildPrefix:   DefaultBuildPrefix,
		InstallPrefix: DefaultInstallPrefix,
		DocPrefix:     DefaultDocPrefix,
		Jobs:          1,
		Version:       DefaultVersion,
	}
}

// Workspace locates an invocation on disk. Both paths must be absolute.
type Workspace struct {
	// WorkDir is the working directory relative prefixes are resolved against.
	WorkDir string
	// ProjectRoot is the directory holding src/ and doc/.
	ProjectRoot string
}

// ResolvedConfig is the validated, fully derived configuration driving one dispatch.
// It is built once by the resolver and passed by value; callers must not modify Environment.
type ResolvedConfig struct {
	Action        Action
	BuildType     BuildType
	BuildBlock    BuildBlock
	Jobs          int
	StaticLinkage bool
	// Verbose asks the delegated tools for verbose output. It has no effect on Jobs.
	Verbose   bool
	Version   string
	Platform  string
	SourceDir string
	// BuildPrefix and InstallPrefix are absolute and end with the Platform segment.
	BuildPrefix   string
	InstallPrefix string
	// DocPrefix is absolute, or empty when documentation goes to the tool default.
	DocPrefix   string
	Doxyfile    string
	Environment map[string]string
}

// Environ returns Environment as sorted KEY=VALUE pairs.
func (c ResolvedConfig) Environ() []string {
	keys := slices.Sorted(maps.Keys(c.Environment))
	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+c.Environment[k])
	}
	return env
}

// Override records a normalization the resolver applied instead of failing.
type Override struct {
	Field     string
	Requested string
	Applied   string
	Reason    string
}

// String returns a human readable description of the override.
func (o Override) String() string {
	return fmt.Sprintf("option --%s will be reset to %s (requested %s): %s", o.Field, o.Applied, o.Requested, o.Reason)
}

// Profile holds option defaults read from a profile file.
// Nil fields were not set in the profile.
type Profile struct {
	Action        *string
	BuildType     *string
	BuildBlock    *string
	BuildPrefix   *string
	InstallPrefix *string
	DocPrefix     *string
	Doxyfile      *string
	Jobs          *int
	StaticLinkage *bool
	DebugBuild    *bool
	Version       *string
	EnvFile       *string
	Environment   map[string]string
}

// ApplyTo overwrites the options set in the profile.
func (p *Profile) ApplyTo(o *RawOptions) {
	if p == nil {
		return
	}
	setString(&o.Action, p.Action)
	setString(&o.BuildType, p.BuildType)
	setString(&o.BuildBlock, p.BuildBlock)
	setString(&o.BuildPrefix, p.BuildPrefix)
	setString(&o.InstallPrefix, p.InstallPrefix)
	setString(&o.DocPrefix, p.DocPrefix)
	setString(&o.Doxyfile, p.Doxyfile)
	setString(&o.Version, p.Version)
	if p.Jobs != nil {
		o.Jobs = *p.Jobs
	}
	if p.StaticLinkage != nil {
		o.StaticLinkage = *p.StaticLinkage
	}
	if p.DebugBuild != nil {
		o.DebugBuild = *p.DebugBuild
	}
	if len(p.Environment) > 0 {
		if o.Environment == nil {
			o.Environment = make(map[string]string, len(p.Environment))
		}
		maps.Copy(o.Environment, p.Environment)
	}
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}
