// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cull/internal/adapters/config"
	_ "go.trai.ch/cull/internal/adapters/lockfile"
	_ "go.trai.ch/cull/internal/adapters/logger"
	_ "go.trai.ch/cull/internal/adapters/stubforge"
	_ "go.trai.ch/cull/internal/adapters/telemetry"
	_ "go.trai.ch/cull/internal/adapters/vendortree"
	// Register app nodes.
	_ "go.trai.ch/cull/internal/app"
)
