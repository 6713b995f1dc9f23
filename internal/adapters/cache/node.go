package cache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.liftoff.dev/liftoff/internal/adapters/config"
	"go.liftoff.dev/liftoff/internal/adapters/logger"
	"go.liftoff.dev/liftoff/internal/core/ports"
)

// NodeID is the Graft node identifier for the build cache adapter.
const NodeID graft.ID = "adapter.build_cache"

func init() {
	graft.Register(graft.Node[ports.BuildCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ProjectNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildCache, error) {
			project, err := graft.Dep[*ports.Project](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			dir := project.Cache.Dir
			if dir == "" {
				base, err := os.UserCacheDir()
				if err != nil {
					base = os.TempDir()
				}
				dir = filepath.Join(base, "liftoff", "builds")
			}

			local, err := NewStore(dir)
			if err != nil {
				return nil, err
			}

			var remote ports.BuildCache
			if project.Cache.RemoteURL != "" {
				remote = NewRemote(project.Cache.RemoteURL, filepath.Join(dir, "remote"))
			}

			return NewTiered(local, remote, log), nil
		},
	})
}
