package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.liftoff.dev/liftoff/internal/core/ports"
)

const (
	// WalkerNodeID is the Graft node identifier for the walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// FingerprinterNodeID is the Graft node identifier for the fingerprinter.
	FingerprinterNodeID graft.ID = "adapter.fs.fingerprinter"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprinterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewFingerprinter(walker), nil
		},
	})
}
