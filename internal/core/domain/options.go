package domain

import "slices"

// BuildType selects optimized or debuggable output.
type BuildType string

const (
	// BuildTypeRelease produces optimized binaries.
	BuildTypeRelease BuildType = "release"
	// BuildTypeDebug produces binaries with debug information.
	// Debug builds are always compiled with a single job.
	BuildTypeDebug BuildType = "debug"
)

var buildTypes = []BuildType{BuildTypeRelease, BuildTypeDebug}

// BuildTypes returns every valid build type, default first.
func BuildTypes() []BuildType {
	return slices.Clone(buildTypes)
}

// BuildTypeNames returns the build type names as accepted on the command line, default first.
func BuildTypeNames() []string {
	return names(buildTypes)
}

// Valid reports whether t is a member of the build type domain.
func (t BuildType) Valid() bool {
	return slices.Contains(buildTypes, t)
}

// CMakeName returns the value passed as CMAKE_BUILD_TYPE.
func (t BuildType) CMakeName() string {
	if t == BuildTypeDebug {
		return "Debug"
	}
	return "Release"
}

// BuildBlock selects which part of the source tree is built.
type BuildBlock string

const (
	// BuildBlockAll builds every library.
	BuildBlockAll BuildBlock = "all"
	// BuildBlockNative builds only the native libraries.
	BuildBlockNative BuildBlock = "native"
	// BuildBlockManaged builds only the managed-language bindings.
	BuildBlockManaged BuildBlock = "managed"
)

var buildBlocks = []BuildBlock{BuildBlockAll, BuildBlockNative, BuildBlockManaged}

// BuildBlocks returns every valid build block, default first.
func BuildBlocks() []BuildBlock {
	return slices.Clone(buildBlocks)
}

// BuildBlockNames returns the build block names as accepted on the command line, default first.
func BuildBlockNames() []string {
	return names(buildBlocks)
}

// Valid reports whether b is a member of the build block domain.
func (b BuildBlock) Valid() bool {
	return slices.Contains(buildBlocks, b)
}

// Target is a make target forwarded by the compile step.
type Target string

const (
	// TargetAll compiles everything.
	TargetAll Target = "all"
	// TargetInstall installs the compiled artifacts.
	TargetInstall Target = "install"
	// TargetClean removes the compiled artifacts.
	TargetClean Target = "clean"
)
