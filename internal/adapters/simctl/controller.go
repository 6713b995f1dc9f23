// Package simctl drives iOS simulators through `xcrun simctl`.
package simctl

import (
	"context"
	"strconv"
	"strings"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DeviceController = (*Controller)(nil)

// Controller implements ports.DeviceController over `xcrun simctl`.
type Controller struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewController creates a new Controller.
func NewController(runner ports.CommandRunner, logger ports.Logger) *Controller {
	return &Controller{runner: runner, logger: logger}
}

func simctlArgv(args ...string) []string {
	return append([]string{"xcrun", "simctl"}, args...)
}

// Find resolves a device by UDID or name. An empty query prefers a booted
// device and falls back to the first available one.
func (c *Controller) Find(ctx context.Context, query string) (domain.Device, error) {
	out, err := c.runner.Output(ctx, ports.Command{Argv: simctlArgv("list", "-j", "devices")})
	if err != nil {
		return domain.Device{}, zerr.Wrap(err, "failed to list devices")
	}

	devices, err := parseDeviceList(out)
	if err != nil {
		return domain.Device{}, err
	}

	if query == "" {
		for _, d := range devices {
			if d.Booted {
				return d, nil
			}
		}
		if len(devices) > 0 {
			return devices[0], nil
		}
		return domain.Device{}, domain.ErrDeviceNotFound
	}

	for _, d := range devices {
		if d.UDID == query || d.Name == query {
			return d, nil
		}
	}
	return domain.Device{}, zerr.With(domain.ErrDeviceNotFound, "query", query)
}

// Boot boots the device. Booting an already-booted device is benign.
func (c *Controller) Boot(ctx context.Context, udid string) error {
	err := c.runner.Run(ctx, ports.Command{Argv: simctlArgv("boot", udid)})
	if err != nil && !isBenign(err) {
		return zerr.Wrap(err, "failed to boot device")
	}
	return nil
}

// Terminate stops a running instance of the app. simctl fails when the app
// is not running; that failure is swallowed and logged.
func (c *Controller) Terminate(ctx context.Context, udid, bundleID string) error {
	err := c.runner.Run(ctx, ports.Command{Argv: simctlArgv("terminate", udid, bundleID)})
	if err != nil {
		c.logger.Warn("could not terminate " + bundleID + " (app probably not running)")
	}
	return nil
}

// Install installs the .app at path onto the device.
func (c *Controller) Install(ctx context.Context, udid, path string) error {
	if err := c.runner.Run(ctx, ports.Command{Argv: simctlArgv("install", udid, path)}); err != nil {
		return zerr.Wrap(err, "failed to install app")
	}
	return nil
}

// Launch starts the app with the given environment and returns its pid.
// simctl expects environment variables prefixed with SIMCTL_CHILD_.
func (c *Controller) Launch(ctx context.Context, udid, bundleID string, env map[string]string) (int, error) {
	childEnv := make(map[string]string, len(env))
	for k, v := range env {
		childEnv["SIMCTL_CHILD_"+k] = v
	}

	out, err := c.runner.Output(ctx, ports.Command{
		Argv: simctlArgv("launch", udid, bundleID),
		Env:  childEnv,
	})
	if err != nil {
		return 0, zerr.Wrap(err, "failed to launch app")
	}

	return parseLaunchPID(string(out), bundleID), nil
}

// AppContainer resolves the installed app's container path. A not-installed
// app yields "" without error.
func (c *Controller) AppContainer(ctx context.Context, udid, bundleID string) (string, error) {
	out, err := c.runner.Output(ctx, ports.Command{Argv: simctlArgv("get_app_container", udid, bundleID, "app")})
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(string(out)), nil
}

// Push delivers an APNs-style payload to the app via `simctl push`.
func (c *Controller) Push(ctx context.Context, udid, bundleID string, payload []byte) error {
	if err := c.runner.Run(ctx, ports.Command{
		Argv:  simctlArgv("push", udid, bundleID, "-"),
		Stdin: payload,
	}); err != nil {
		return zerr.Wrap(err, "failed to push notification")
	}
	return nil
}

// parseLaunchPID extracts the pid from simctl launch output, which has the
// form "<bundle-id>: <pid>".
func parseLaunchPID(out, bundleID string) int {
	out = strings.TrimSpace(out)
	rest, ok := strings.CutPrefix(out, bundleID+":")
	if !ok {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0
	}
	return pid
}

// isBenign reports whether a simctl failure can be ignored, e.g. booting a
// device that is already booted.
func isBenign(err error) bool {
	return strings.Contains(err.Error(), "current state: Booted")
}
