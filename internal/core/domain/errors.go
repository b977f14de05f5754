package domain

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidAction is the kind of a ConfigError raised for an action outside the action set.
	ErrInvalidAction = zerr.New("invalid action")

	// ErrInvalidBuildType is the kind of a ConfigError raised for an unknown build type.
	ErrInvalidBuildType = zerr.New("invalid build type")

	// ErrInvalidBuildBlock is the kind of a ConfigError raised for an unknown build block.
	ErrInvalidBuildBlock = zerr.New("invalid build block")

	// ErrInvalidJobCount is the kind of a ConfigError raised when fewer than one job is requested.
	ErrInvalidJobCount = zerr.New("invalid job count")

	// ErrUnexpectedArguments is the kind of a ConfigError raised when positional arguments are present.
	ErrUnexpectedArguments = zerr.New("this program does not accept positional arguments")

	// ErrInvalidPlatform is the kind of a ConfigError raised when the detected platform
	// identifier cannot be used as a directory name.
	ErrInvalidPlatform = zerr.New("invalid platform identifier")

	// ErrInvalidFlag is the kind of a ConfigError raised when the command line cannot be parsed.
	ErrInvalidFlag = zerr.New("invalid command line")

	// ErrInvalidWorkspace is returned when the working directory or project root is not absolute.
	ErrInvalidWorkspace = zerr.New("workspace paths must be absolute")

	// ErrWorkspaceDetectionFailed is returned when the working directory or program path cannot be read.
	ErrWorkspaceDetectionFailed = zerr.New("failed to detect workspace")

	// ErrUnknownStep is returned when a step kind has no adapter call.
	ErrUnknownStep = zerr.New("unknown step")

	// ErrCommandFailed is returned when an external tool exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildDirCreateFailed is returned when a build, install or documentation directory cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create directory")

	// ErrHeaderWriteFailed is returned when the build header cannot be written.
	ErrHeaderWriteFailed = zerr.New("failed to write build header")

	// ErrDoxyfileReadFailed is returned when the base Doxyfile cannot be read.
	ErrDoxyfileReadFailed = zerr.New("failed to read doxyfile")

	// ErrDoxyfileWriteFailed is returned when the generated Doxyfile cannot be written.
	ErrDoxyfileWriteFailed = zerr.New("failed to write doxyfile")

	// ErrProfileReadFailed is returned when the option profile cannot be read.
	ErrProfileReadFailed = zerr.New("failed to read option profile")

	// ErrProfileParseFailed is returned when the option profile is not valid YAML for the schema.
	ErrProfileParseFailed = zerr.New("failed to parse option profile")

	// ErrEnvFileReadFailed is returned when an environment file cannot be read or parsed.
	ErrEnvFileReadFailed = zerr.New("failed to read environment file")
)

// configKinds lists every ConfigError kind.
var configKinds = []error{
	ErrInvalidAction,
	ErrInvalidBuildType,
	ErrInvalidBuildBlock,
	ErrInvalidJobCount,
	ErrUnexpectedArguments,
	ErrInvalidPlatform,
	ErrInvalidFlag,
}

// ConfigError reports the first configuration violation found during resolution.
// It names the offending value and, for enumerated options, the allowed domain.
type ConfigError struct {
	// Kind is one of the ErrInvalid* / ErrUnexpectedArguments sentinels.
	Kind error
	// Flag is the long option name without dashes. Empty for positional arguments.
	Flag string
	// Value is the rejected value as supplied.
	Value string
	// Allowed is the closed domain for enumerated options.
	Allowed []string
	// Constraint describes a non-enumerated requirement, e.g. "equal or greater than 1".
	Constraint string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	switch {
	case len(e.Allowed) > 0:
		return fmt.Sprintf("option --%s has to be one of %s: got %q",
			e.Flag, strings.Join(e.Allowed, ", "), e.Value)
	case e.Flag != "":
		return fmt.Sprintf("option --%s has to be %s: got %s", e.Flag, e.Constraint, e.Value)
	case e.Constraint != "":
		return fmt.Sprintf("%s %q: %s", e.Kind.Error(), e.Value, e.Constraint)
	default:
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Value)
	}
}

// Unwrap returns the error kind so errors.Is matches the sentinels above.
func (e *ConfigError) Unwrap() error {
	return e.Kind
}

// IsConfigError reports whether err is, or wraps, a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return true
	}
	for _, kind := range configKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
