package domain

import "go.trai.ch/zerr"

var (
	// ErrNoScheme is returned when no Xcode scheme is configured or given.
	ErrNoScheme = zerr.New("no scheme specified")

	// ErrUnknownDestination is returned for a destination that is neither
	// "simulator" nor "device".
	ErrUnknownDestination = zerr.New("unknown destination")

	// ErrBinaryRequired is returned when a rebundle is requested for a
	// physical device without an explicit binary to rebundle into.
	ErrBinaryRequired = zerr.New("rebundling for a physical device requires an explicit binary")

	// ErrBundleOutputMissing is returned when the bundler export step
	// completed but produced no bundle output.
	ErrBundleOutputMissing = zerr.New("bundle output not found")

	// ErrDeviceNotFound is returned when no device matches the query.
	ErrDeviceNotFound = zerr.New("device not found")

	// ErrNotificationNotFound is returned by cancel/dismiss for an unknown
	// notification identifier.
	ErrNotificationNotFound = zerr.New("notification not found")

	// ErrPermissionDenied is returned when scheduling is attempted after
	// notification permissions were denied.
	ErrPermissionDenied = zerr.New("notification permission denied")
)
