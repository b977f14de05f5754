package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildbot/internal/adapters/cmake"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/buildbot/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/buildbot/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/buildbot/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cmake.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			tool, err := graft.Dep[ports.BuildTool](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(tool, telemetry, log), nil
		},
	})
}
