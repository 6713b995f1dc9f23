package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.liftoff.dev/liftoff/internal/core/ports"
)

const (
	// NodeID is the Graft node identifier for the config loader adapter.
	NodeID graft.ID = "adapter.config_loader"
	// ProjectNodeID is the Graft node identifier for the loaded project.
	ProjectNodeID graft.ID = "adapter.config_project"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return &FileConfigLoader{Filename: SettingsFrom(ctx).Path}, nil
		},
	})

	graft.Register(graft.Node[*ports.Project]{
		ID:        ProjectNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*ports.Project, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load(".")
		},
	})
}
