package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/buildbot/internal/adapters/config"
	"go.trai.ch/buildbot/internal/core/domain"
)

const (
	flagAction        = "action"
	flagBuildType     = "build-type"
	flagBuildBlock    = "build-block"
	flagBuildPrefix   = "build-prefix"
	flagInstallPrefix = "install-prefix"
	flagDocPrefix     = "documentation-prefix"
	flagDoxyfile      = "doxyfile"
	flagJobs          = "jobs"
	flagStaticLinkage = "static-linkage"
	flagDebugBuild    = "debug-build"
	flagVersion       = "version"
	flagConfig        = "config"
	flagEnvFile       = "env-file"
)

func registerFlags(cmd *cobra.Command) {
	d := domain.DefaultRawOptions()
	flags := cmd.Flags()

	flags.StringP(flagAction, "a", d.Action, "Action to perform")
	flags.String(flagBuildType, d.BuildType, "Build type: release or debug")
	flags.StringP(flagBuildBlock, "B", d.BuildBlock, "Part of the project to build: all, native or managed")
	flags.String(flagBuildPrefix, d.BuildPrefix, "Build base directory, relative to the working directory")
	flags.String(flagInstallPrefix, d.InstallPrefix, "Install base directory, relative to the working directory")
	flags.String(flagDocPrefix, d.DocPrefix, "Documentation directory, relative to the install prefix")
	flags.String(flagDoxyfile, "", "Doxyfile to generate documentation from (default <project>/doc/Doxyfile)")
	flags.IntP(flagJobs, "j", d.Jobs, "Number of parallel jobs, reset to 1 for debug builds")
	flags.Bool(flagStaticLinkage, d.StaticLinkage, "Link libraries statically")
	flags.BoolP(flagDebugBuild, "d", d.DebugBuild, "Ask the build tools for verbose output")
	flags.StringP(flagVersion, "V", d.Version, "Version name stamped into the build and documentation")
	flags.StringP(flagConfig, "c", config.DefaultProfileName, "Option profile to read defaults from")
	flags.String(flagEnvFile, "", "Environment file exported to every build tool")
}

// options collects the raw options: defaults, then the profile, then flags set on the command line.
func (c *CLI) options(cmd *cobra.Command, args []string) (domain.RawOptions, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString(flagConfig)
	profile, err := c.app.LoadProfile(configPath, flags.Changed(flagConfig))
	if err != nil {
		return domain.RawOptions{}, err
	}

	raw := domain.DefaultRawOptions()
	profile.ApplyTo(&raw)
	applyFlags(cmd, &raw)

	envFile, _ := flags.GetString(flagEnvFile)
	if !flags.Changed(flagEnvFile) && profile != nil && profile.EnvFile != nil {
		envFile = *profile.EnvFile
	}
	raw.Environment, err = c.app.Environment(profile, envFile)
	if err != nil {
		return domain.RawOptions{}, err
	}

	raw.Args = args
	return raw, nil
}

func applyFlags(cmd *cobra.Command, raw *domain.RawOptions) {
	flags := cmd.Flags()

	for name, dst := range map[string]*string{
		flagAction:        &raw.Action,
		flagBuildType:     &raw.BuildType,
		flagBuildBlock:    &raw.BuildBlock,
		flagBuildPrefix:   &raw.BuildPrefix,
		flagInstallPrefix: &raw.InstallPrefix,
		flagDocPrefix:     &raw.DocPrefix,
		flagDoxyfile:      &raw.Doxyfile,
		flagVersion:       &raw.Version,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	if flags.Changed(flagJobs) {
		raw.Jobs, _ = flags.GetInt(flagJobs)
	}
	if flags.Changed(flagStaticLinkage) {
		raw.StaticLinkage, _ = flags.GetBool(flagStaticLinkage)
	}
	if flags.Changed(flagDebugBuild) {
		raw.DebugBuild, _ = flags.GetBool(flagDebugBuild)
	}
}
