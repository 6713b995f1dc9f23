package notify

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.liftoff.dev/liftoff/internal/adapters/config"
	"go.liftoff.dev/liftoff/internal/adapters/logger"
	"go.liftoff.dev/liftoff/internal/adapters/simctl"
	"go.liftoff.dev/liftoff/internal/core/ports"
)

// NodeID is the Graft node identifier for the notifier factory.
const NodeID graft.ID = "adapter.notifier_factory"

// Factory creates a Service bound to a concrete device once the run target
// is known.
type Factory struct {
	devices  ports.DeviceController
	logger   ports.Logger
	stateDir string
	bundleID string
	sound    string
}

// NewFactory creates a notifier factory for the project.
func NewFactory(devices ports.DeviceController, logger ports.Logger, project *ports.Project) *Factory {
	return &Factory{
		devices:  devices,
		logger:   logger,
		stateDir: filepath.Join(project.Root, ".liftoff"),
		bundleID: project.BundleID,
		sound:    project.DefaultSound,
	}
}

// For returns a notifier for the device with the given UDID.
func (f *Factory) For(udid string) (*Service, error) {
	statePath := filepath.Join(f.stateDir, "notify-"+udid+".json")
	return Open(f.devices, f.logger, statePath, udid, f.bundleID, f.sound)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{simctl.NodeID, logger.NodeID, config.ProjectNodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			devices, err := graft.Dep[ports.DeviceController](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			project, err := graft.Dep[*ports.Project](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(devices, log, project), nil
		},
	})
}
