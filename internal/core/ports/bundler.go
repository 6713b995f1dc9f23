package ports

import "context"

// Bundler manages the local JS bundler dev-server and the standalone bundle
// export used by the rebundle flow.
//
//go:generate go run go.uber.org/mock/mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	// Start spawns the dev-server and blocks until its port accepts
	// connections, returning the port it listens on. A positive port
	// overrides the configured one.
	Start(ctx context.Context, port int) (int, error)

	// Stop terminates the dev-server. Stopping a bundler that never started
	// is a no-op.
	Stop() error

	// ExportBundle writes a standalone JS bundle into outDir. Returns
	// domain.ErrBundleOutputMissing when the export produced no output.
	ExportBundle(ctx context.Context, outDir string) error
}
