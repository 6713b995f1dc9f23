package simctl

import (
	"context"

	"github.com/grindlemire/graft"
	"go.liftoff.dev/liftoff/internal/adapters/logger"
	"go.liftoff.dev/liftoff/internal/adapters/shell"
	"go.liftoff.dev/liftoff/internal/core/ports"
)

// NodeID is the Graft node identifier for the device controller adapter.
const NodeID graft.ID = "adapter.device_controller"

func init() {
	graft.Register(graft.Node[ports.DeviceController]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DeviceController, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewController(runner, log), nil
		},
	})
}
