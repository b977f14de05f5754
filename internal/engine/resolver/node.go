package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildbot/internal/adapters/platform" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/buildbot/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{platform.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			detector, err := graft.Dep[ports.PlatformDetector](ctx)
			if err != nil {
				return nil, err
			}
			return New(detector), nil
		},
	})
}
