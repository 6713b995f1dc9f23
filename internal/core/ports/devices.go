package ports

import (
	"context"

	"go.liftoff.dev/liftoff/internal/core/domain"
)

// DeviceController drives the simulator control tool.
//
// Terminate and AppContainer fail benignly: a missing process or app is not
// an error from the caller's point of view, so implementations return nil
// (respectively "" without error) in that case.
//
//go:generate go run go.uber.org/mock/mockgen -source=devices.go -destination=mocks/mock_devices.go -package=mocks
type DeviceController interface {
	// Find resolves a device by UDID or name. An empty query selects a
	// booted device, or the first available one. Returns
	// domain.ErrDeviceNotFound when nothing matches.
	Find(ctx context.Context, query string) (domain.Device, error)

	// Boot boots the device if it is not already booted.
	Boot(ctx context.Context, udid string) error

	// Terminate stops a running instance of the app. A non-running app is
	// not an error.
	Terminate(ctx context.Context, udid, bundleID string) error

	// Install installs the .app at path onto the device.
	Install(ctx context.Context, udid, path string) error

	// Launch starts the app and returns its pid.
	Launch(ctx context.Context, udid, bundleID string, env map[string]string) (int, error)

	// AppContainer resolves the installed app's container path. Returns ""
	// without error when the app is not installed.
	AppContainer(ctx context.Context, udid, bundleID string) (string, error)

	// Push delivers an APNs-style JSON payload to the app.
	Push(ctx context.Context, udid, bundleID string, payload []byte) error
}
