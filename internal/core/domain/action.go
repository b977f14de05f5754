package domain

import "slices"

// Action names the build operation a single invocation performs.
type Action string

const (
	// ActionGenerate runs the build-file generator and writes the target dependency graph.
	ActionGenerate Action = "generate"
	// ActionBuildAll compiles every target and writes the build header.
	ActionBuildAll Action = "build_all"
	// ActionGenerateDocs builds the API documentation.
	ActionGenerateDocs Action = "generate_docs"
	// ActionBuildInstall installs the compiled targets into the install prefix.
	ActionBuildInstall Action = "build_install"
	// ActionRunTests runs the test suite from the build directory.
	ActionRunTests Action = "run_tests"
	// ActionBuildClean removes the compiled artifacts from the build directory.
	ActionBuildClean Action = "build_clean"
)

// actions lists the action domain in the order it is presented to users.
// The first entry is the default.
var actions = []Action{
	ActionGenerate,
	ActionBuildAll,
	ActionGenerateDocs,
	ActionBuildInstall,
	ActionRunTests,
	ActionBuildClean,
}

// Actions returns every valid action, default first.
func Actions() []Action {
	return slices.Clone(actions)
}

// ActionNames returns the action names as accepted on the command line, default first.
func ActionNames() []string {
	return names(actions)
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Valid reports whether a is a member of the action domain.
func (a Action) Valid() bool {
	return slices.Contains(actions, a)
}

// String returns the action name as accepted on the command line.
func (a Action) String() string {
	return string(a)
}
