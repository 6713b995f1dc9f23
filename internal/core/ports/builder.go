// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
)

// BuildRequest carries the parameters for a native build.
type BuildRequest struct {
	// Workspace is the path to the .xcworkspace. Empty means Project is used.
	Workspace string
	// Project is the path to the .xcodeproj, used when Workspace is empty.
	Project string
	// Scheme is the Xcode scheme to build.
	Scheme string
	// Configuration is the build configuration, e.g. "Debug".
	Configuration string
	// Destination is an xcodebuild destination specifier, e.g.
	// "generic/platform=iOS Simulator".
	Destination string
	// DerivedDataPath overrides Xcode's derived data location.
	DerivedDataPath string
}

// ArchiveRequest carries the parameters for a signed device build.
type ArchiveRequest struct {
	BuildRequest
	// ExportMethod is the code-signing export method, e.g. "development".
	ExportMethod string
	// TeamID is the development team used for signing.
	TeamID string
	// OutputDir receives the exported .ipa.
	OutputDir string
}

// Builder drives the native build tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Build compiles the scheme for the given destination and returns the
	// path to the built .app.
	Build(ctx context.Context, req BuildRequest) (string, error)

	// ExportArchive produces a signed archive and exports it, returning the
	// path to the .ipa. Used for physical device targets.
	ExportArchive(ctx context.Context, req ArchiveRequest) (string, error)
}
