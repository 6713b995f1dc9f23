package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.liftoff.dev/liftoff/internal/adapters/logger"
	"go.liftoff.dev/liftoff/internal/core/ports"
)

// NodeID is the Graft node identifier for the command runner adapter.
const NodeID graft.ID = "adapter.command_runner"

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
