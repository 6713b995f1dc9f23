// Package domain holds the core types for the liftoff run and notification
// workflows.
package domain

// Destination identifies the kind of target a run is aimed at.
type Destination string

const (
	// DestinationSimulator targets an iOS simulator.
	DestinationSimulator Destination = "simulator"
	// DestinationDevice targets a physical device, which requires a signed
	// archive export instead of a plain build.
	DestinationDevice Destination = "device"
)

// ParseDestination parses a destination flag value. Empty defaults to the
// simulator.
func ParseDestination(s string) (Destination, error) {
	switch Destination(s) {
	case DestinationSimulator, DestinationDevice:
		return Destination(s), nil
	case "":
		return DestinationSimulator, nil
	default:
		return "", ErrUnknownDestination
	}
}

// RunOptions carries the resolved parameters for a single run invocation.
type RunOptions struct {
	// Scheme is the Xcode scheme to build.
	Scheme string
	// Configuration is the build configuration, e.g. "Debug" or "Release".
	Configuration string
	// Destination selects simulator or physical device.
	Destination Destination
	// Device is a UDID or device name. Empty means "any booted simulator,
	// or the first available one".
	Device string
	// Binary is an explicit path to a prebuilt .app. When set, build and
	// cache restore are skipped.
	Binary string
	// Port is the bundler dev-server port. Zero means the configured default.
	Port int
	// NoBuildCache disables cache restore and upload for this run.
	NoBuildCache bool
	// Rebundle repackages the JS bundle and config into an existing binary
	// instead of performing a full native build.
	Rebundle bool
	// NonInteractive stops the bundler once the app has launched instead of
	// staying attached to it.
	NonInteractive bool
}

// Validate checks that the options are internally consistent.
func (o *RunOptions) Validate() error {
	if o.Scheme == "" {
		return ErrNoScheme
	}
	if o.Destination != DestinationSimulator && o.Destination != DestinationDevice {
		return ErrUnknownDestination
	}
	// Rebundling replaces the JS payload inside an already-built binary. On a
	// physical device there is no way to locate one, so it must be given.
	if o.Rebundle && o.Destination == DestinationDevice && o.Binary == "" {
		return ErrBinaryRequired
	}
	return nil
}

// LaunchInfo describes the artifact handed to the install/launch steps.
type LaunchInfo struct {
	// BundleID is the app's bundle identifier.
	BundleID string
	// BinaryPath is the path to the .app directory (or .ipa for devices).
	BinaryPath string
	// FreshBuild reports whether the binary came out of this run's build
	// step, as opposed to an explicit path or a cache hit. Only fresh
	// simulator builds are uploaded to the cache.
	FreshBuild bool
	// Preinstalled reports that BinaryPath points into an app container on
	// the device, so the install step is skipped.
	Preinstalled bool
}

// Device is a simulator or physical device resolved by the device controller.
type Device struct {
	UDID   string
	Name   string
	OS     string
	Booted bool
}
