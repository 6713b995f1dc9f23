package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/mattn/go-isatty"
	"go.liftoff.dev/liftoff/internal/adapters/config"
	telprogrock "go.liftoff.dev/liftoff/internal/adapters/telemetry/progrock"
	"go.liftoff.dev/liftoff/internal/core/ports"
)

// NodeID is the Graft node identifier for the telemetry adapter.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			// Only render the progress tape on a terminal; quiet runs and
			// CI get the no-op recorder and stream through the logger.
			if config.SettingsFrom(ctx).Quiet || !isatty.IsTerminal(os.Stderr.Fd()) {
				return NewNoOp(), nil
			}
			return telprogrock.New(), nil
		},
	})
}
