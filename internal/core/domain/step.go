package domain

// StepKind identifies one adapter call of the build tool.
type StepKind string

const (
	// StepGenerateBuildFiles runs the build-file generator.
	StepGenerateBuildFiles StepKind = "generate-build-files"
	// StepWriteDependencyGraph writes the target dependency graph.
	StepWriteDependencyGraph StepKind = "write-dependency-graph"
	// StepCompile runs the compiler driver for a Target.
	StepCompile StepKind = "compile"
	// StepWriteBuildHeader writes the build information header.
	StepWriteBuildHeader StepKind = "write-build-header"
	// StepRunTestSuite runs the test suite.
	StepRunTestSuite StepKind = "run-test-suite"
	// StepGenerateDocumentation generates the API documentation.
	StepGenerateDocumentation StepKind = "generate-documentation"
)

// Step describes a single adapter call. Target is only set for StepCompile.
type Step struct {
	Kind   StepKind
	Target Target
}

// String returns the step name, including the target for compile steps.
func (s Step) String() string {
	if s.Target != "" {
		return string(s.Kind) + "(" + string(s.Target) + ")"
	}
	return string(s.Kind)
}

// Command is a single external tool invocation.
type Command struct {
	// Name is the executable, looked up on PATH unless absolute.
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env overrides the inherited process environment.
	Env map[string]string
}

// String renders the command line for logs.
func (c Command) String() string {
	s := c.Name
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}
