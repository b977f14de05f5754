// Package dispatcher maps an action to its ordered build steps and runs them.
package dispatcher

import (
	"context"
	"slices"

	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/buildbot/internal/core/ports"
	"go.trai.ch/zerr"
)

// plans holds the ordered steps of every action.
var plans = map[domain.Action][]domain.Step{
	domain.ActionGenerate: {
		{Kind: domain.StepGenerateBuildFiles},
		{Kind: domain.StepWriteDependencyGraph},
	},
	domain.ActionBuildAll: {
		{Kind: domain.StepCompile, Target: domain.TargetAll},
		{Kind: domain.StepWriteBuildHeader},
	},
	domain.ActionBuildInstall: {
		{Kind: domain.StepCompile, Target: domain.TargetInstall},
	},
	domain.ActionRunTests: {
		{Kind: domain.StepRunTestSuite},
	},
	domain.ActionGenerateDocs: {
		{Kind: domain.StepGenerateDocumentation},
	},
	domain.ActionBuildClean: {
		{Kind: domain.StepCompile, Target: domain.TargetClean},
	},
}

// Plan returns the ordered steps for action.
func Plan(action domain.Action) ([]domain.Step, error) {
	steps, ok := plans[action]
	if !ok {
		return nil, &domain.ConfigError{
			Kind:    domain.ErrInvalidAction,
			Flag:    "action",
			Value:   string(action),
			Allowed: domain.ActionNames(),
		}
	}
	return slices.Clone(steps), nil
}

// Dispatcher runs the steps of an action against a build tool, one at a time.
type Dispatcher struct {
	tool      ports.BuildTool
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a Dispatcher.
func New(tool ports.BuildTool, telemetry ports.Telemetry, logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		tool:      tool,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Dispatch runs the steps planned for cfg.Action in order.
// It stops at the first failing step and returns that step's error unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg domain.ResolvedConfig) error {
	steps, err := Plan(cfg.Action)
	if err != nil {
		return err
	}

	for _, step := range steps {
		if err := d.run(ctx, cfg, step); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) run(ctx context.Context, cfg domain.ResolvedConfig, step domain.Step) error {
	stepCtx, vertex := d.telemetry.Record(ctx, step.String())
	d.logger.Info("running " + step.String())

	err := d.invoke(stepCtx, cfg, step)
	vertex.Complete(err)
	if err != nil {
		d.logger.Warn(step.String() + " " + string(domain.StatusOf(err)))
	}
	return err
}

func (d *Dispatcher) invoke(ctx context.Context, cfg domain.ResolvedConfig, step domain.Step) error {
	switch step.Kind {
	case domain.StepGenerateBuildFiles:
		return d.tool.GenerateBuildFiles(ctx, cfg)
	case domain.StepWriteDependencyGraph:
		return d.tool.WriteDependencyGraph(ctx, cfg)
	case domain.StepCompile:
		return d.tool.Compile(ctx, cfg, step.Target)
	case domain.StepWriteBuildHeader:
		return d.tool.WriteBuildHeader(ctx, cfg)
	case domain.StepRunTestSuite:
		return d.tool.RunTestSuite(ctx, cfg)
	case domain.StepGenerateDocumentation:
		return d.tool.GenerateDocumentation(ctx, cfg)
	default:
		return zerr.With(domain.ErrUnknownStep, "step", step.String())
	}
}
