// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.liftoff.dev/liftoff/internal/adapters/cache"
	_ "go.liftoff.dev/liftoff/internal/adapters/config"
	_ "go.liftoff.dev/liftoff/internal/adapters/devserver"
	_ "go.liftoff.dev/liftoff/internal/adapters/fs"
	_ "go.liftoff.dev/liftoff/internal/adapters/logger"
	_ "go.liftoff.dev/liftoff/internal/adapters/notify"
	_ "go.liftoff.dev/liftoff/internal/adapters/shell"
	_ "go.liftoff.dev/liftoff/internal/adapters/simctl"
	_ "go.liftoff.dev/liftoff/internal/adapters/telemetry"
	_ "go.liftoff.dev/liftoff/internal/adapters/xcode"
	// Register app and engine nodes.
	_ "go.liftoff.dev/liftoff/internal/app"
	_ "go.liftoff.dev/liftoff/internal/engine/runner"
)
