package config

// DefaultProfileName is the profile read from the working directory when none is given.
const DefaultProfileName = "buildbot.yaml"

// ProfileFile represents the structure of the buildbot.yaml option profile.
// Nil fields are left at their defaults.
type ProfileFile struct {
	Action        *string           `yaml:"action"`
	BuildType     *string           `yaml:"build_type"`
	BuildBlock    *string           `yaml:"build_block"`
	BuildPrefix   *string           `yaml:"build_prefix"`
	InstallPrefix *string           `yaml:"install_prefix"`
	DocPrefix     *string           `yaml:"documentation_prefix"`
	Doxyfile      *string           `yaml:"doxyfile"`
	Jobs          *int              `yaml:"jobs"`
	StaticLinkage *bool             `yaml:"static_linkage"`
	DebugBuild    *bool             `yaml:"debug_build"`
	Version       *string           `yaml:"version"`
	EnvFile       *string           `yaml:"env_file"`
	Environment   map[string]string `yaml:"environment"`
}
