package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.liftoff.dev/liftoff/internal/adapters/cache"
	"go.liftoff.dev/liftoff/internal/adapters/devserver"
	"go.liftoff.dev/liftoff/internal/adapters/fs"
	"go.liftoff.dev/liftoff/internal/adapters/logger"
	"go.liftoff.dev/liftoff/internal/adapters/simctl"
	"go.liftoff.dev/liftoff/internal/adapters/telemetry"
	"go.liftoff.dev/liftoff/internal/adapters/xcode"
	"go.liftoff.dev/liftoff/internal/core/ports"
)

// NodeID is the Graft node identifier for the pipeline runner.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			xcode.NodeID,
			simctl.NodeID,
			cache.NodeID,
			devserver.NodeID,
			fs.FingerprinterNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Runner, error) {
	builder, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}
	devices, err := graft.Dep[ports.DeviceController](ctx)
	if err != nil {
		return nil, err
	}
	buildCache, err := graft.Dep[ports.BuildCache](ctx)
	if err != nil {
		return nil, err
	}
	bundler, err := graft.Dep[ports.Bundler](ctx)
	if err != nil {
		return nil, err
	}
	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(builder, devices, buildCache, bundler, fingerprinter, tel, log), nil
}
