package devserver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.liftoff.dev/liftoff/internal/adapters/config"
	"go.liftoff.dev/liftoff/internal/adapters/logger"
	"go.liftoff.dev/liftoff/internal/adapters/shell"
	"go.liftoff.dev/liftoff/internal/core/ports"
)

// NodeID is the Graft node identifier for the bundler adapter.
const NodeID graft.ID = "adapter.bundler"

func init() {
	graft.Register(graft.Node[ports.Bundler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ProjectNodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Bundler, error) {
			project, err := graft.Dep[*ports.Project](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBundler(project.Bundler, project.Root, runner, log), nil
		},
	})
}
