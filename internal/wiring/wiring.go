// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/buildbot/internal/adapters/cmake"
	_ "go.trai.ch/buildbot/internal/adapters/config"
	_ "go.trai.ch/buildbot/internal/adapters/logger"
	_ "go.trai.ch/buildbot/internal/adapters/platform"
	_ "go.trai.ch/buildbot/internal/adapters/shell"
	_ "go.trai.ch/buildbot/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/buildbot/internal/app"
	_ "go.trai.ch/buildbot/internal/engine/dispatcher"
	_ "go.trai.ch/buildbot/internal/engine/resolver"
)
