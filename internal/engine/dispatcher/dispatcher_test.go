package dispatcher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/buildbot/internal/core/ports"
	"go.trai.ch/buildbot/internal/core/ports/mocks"
	"go.trai.ch/buildbot/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	tool       *mocks.MockBuildTool
	telemetry  *mocks.MockTelemetry
	vertex     *mocks.MockVertex
	logger     *mocks.MockLogger
	dispatcher *dispatcher.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		tool:      mocks.NewMockBuildTool(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		vertex:    mocks.NewMockVertex(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, f.vertex
		}).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.dispatcher = dispatcher.New(f.tool, f.telemetry, f.logger)
	return f
}

func config(action domain.Action) domain.ResolvedConfig {
	return domain.ResolvedConfig{
		Action:        action,
		BuildType:     domain.BuildTypeRelease,
		BuildBlock:    domain.BuildBlockAll,
		Jobs:          4,
		Platform:      "linux64",
		BuildPrefix:   "/x/build/linux64",
		InstallPrefix: "/x/install/linux64",
	}
}

func TestPlan_Table(t *testing.T) {
	tests := []struct {
		action domain.Action
		want   []domain.Step
	}{
		{domain.ActionGenerate, []domain.Step{
			{Kind: domain.StepGenerateBuildFiles},
			{Kind: domain.StepWriteDependencyGraph},
		}},
		{domain.ActionBuildAll, []domain.Step{
			{Kind: domain.StepCompile, Target: domain.TargetAll},
			{Kind: domain.StepWriteBuildHeader},
		}},
		{domain.ActionBuildInstall, []domain.Step{{Kind: domain.StepCompile, Target: domain.TargetInstall}}},
		{domain.ActionRunTests, []domain.Step{{Kind: domain.StepRunTestSuite}}},
		{domain.ActionGenerateDocs, []domain.Step{{Kind: domain.StepGenerateDocumentation}}},
		{domain.ActionBuildClean, []domain.Step{{Kind: domain.StepCompile, Target: domain.TargetClean}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			got, err := dispatcher.Plan(tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 2)
		})
	}
}

func TestPlan_CoversEveryAction(t *testing.T) {
	for _, a := range domain.Actions() {
		_, err := dispatcher.Plan(a)
		require.NoError(t, err, "action %q has no plan", a)
	}
}

func TestPlan_ReturnsCopy(t *testing.T) {
	steps, err := dispatcher.Plan(domain.ActionGenerate)
	require.NoError(t, err)
	steps[0].Kind = domain.StepRunTestSuite

	again, err := dispatcher.Plan(domain.ActionGenerate)
	require.NoError(t, err)
	assert.Equal(t, domain.StepGenerateBuildFiles, again[0].Kind)
}

func TestDispatch_Generate(t *testing.T) {
	f := newFixture(t)
	cfg := config(domain.ActionGenerate)

	gomock.InOrder(
		f.tool.EXPECT().GenerateBuildFiles(gomock.Any(), cfg).Return(nil),
		f.tool.EXPECT().WriteDependencyGraph(gomock.Any(), cfg).Return(nil),
	)
	f.vertex.EXPECT().Complete(nil).Times(2)

	require.NoError(t, f.dispatcher.Dispatch(context.Background(), cfg))
}

func TestDispatch_BuildAll(t *testing.T) {
	f := newFixture(t)
	cfg := config(domain.ActionBuildAll)

	gomock.InOrder(
		f.tool.EXPECT().Compile(gomock.Any(), cfg, domain.TargetAll).Return(nil),
		f.tool.EXPECT().WriteBuildHeader(gomock.Any(), cfg).Return(nil),
	)
	f.vertex.EXPECT().Complete(nil).Times(2)

	require.NoError(t, f.dispatcher.Dispatch(context.Background(), cfg))
}

func TestDispatch_SingleStepActions(t *testing.T) {
	tests := []struct {
		action domain.Action
		expect func(f *fixture, cfg domain.ResolvedConfig)
	}{
		{domain.ActionBuildInstall, func(f *fixture, cfg domain.ResolvedConfig) {
			f.tool.EXPECT().Compile(gomock.Any(), cfg, domain.TargetInstall).Return(nil)
		}},
		{domain.ActionBuildClean, func(f *fixture, cfg domain.ResolvedConfig) {
			f.tool.EXPECT().Compile(gomock.Any(), cfg, domain.TargetClean).Return(nil)
		}},
		{domain.ActionRunTests, func(f *fixture, cfg domain.ResolvedConfig) {
			f.tool.EXPECT().RunTestSuite(gomock.Any(), cfg).Return(nil)
		}},
		{domain.ActionGenerateDocs, func(f *fixture, cfg domain.ResolvedConfig) {
			f.tool.EXPECT().GenerateDocumentation(gomock.Any(), cfg).Return(nil)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			f := newFixture(t)
			cfg := config(tt.action)
			tt.expect(f, cfg)
			f.vertex.EXPECT().Complete(nil).Times(1)

			require.NoError(t, f.dispatcher.Dispatch(context.Background(), cfg))
		})
	}
}

func TestDispatch_FirstFailureHalts(t *testing.T) {
	f := newFixture(t)
	cfg := config(domain.ActionGenerate)
	cmakeErr := errors.New("cmake exited with status 1")

	f.tool.EXPECT().GenerateBuildFiles(gomock.Any(), cfg).Return(cmakeErr)
	f.tool.EXPECT().WriteDependencyGraph(gomock.Any(), gomock.Any()).Times(0)
	f.vertex.EXPECT().Complete(cmakeErr).Times(1)

	err := f.dispatcher.Dispatch(context.Background(), cfg)
	assert.Same(t, cmakeErr, err)
}

func TestDispatch_SecondFailureReported(t *testing.T) {
	f := newFixture(t)
	cfg := config(domain.ActionBuildAll)
	headerErr := errors.New("disk full")

	gomock.InOrder(
		f.tool.EXPECT().Compile(gomock.Any(), cfg, domain.TargetAll).Return(nil),
		f.tool.EXPECT().WriteBuildHeader(gomock.Any(), cfg).Return(headerErr),
	)
	f.vertex.EXPECT().Complete(nil).Times(1)
	f.vertex.EXPECT().Complete(headerErr).Times(1)

	err := f.dispatcher.Dispatch(context.Background(), cfg)
	assert.Same(t, headerErr, err)
}

func TestDispatch_RepeatableSequence(t *testing.T) {
	f := newFixture(t)
	cfg := config(domain.ActionGenerate)

	gomock.InOrder(
		f.tool.EXPECT().GenerateBuildFiles(gomock.Any(), cfg).Return(nil),
		f.tool.EXPECT().WriteDependencyGraph(gomock.Any(), cfg).Return(nil),
		f.tool.EXPECT().GenerateBuildFiles(gomock.Any(), cfg).Return(nil),
		f.tool.EXPECT().WriteDependencyGraph(gomock.Any(), cfg).Return(nil),
	)
	f.vertex.EXPECT().Complete(nil).Times(4)

	require.NoError(t, f.dispatcher.Dispatch(context.Background(), cfg))
	require.NoError(t, f.dispatcher.Dispatch(context.Background(), cfg))
}

func TestDispatch_UnknownAction(t *testing.T) {
	f := newFixture(t)

	err := f.dispatcher.Dispatch(context.Background(), config("cmake"))
	require.ErrorIs(t, err, domain.ErrInvalidAction)

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, domain.ActionNames(), cfgErr.Allowed)
}
