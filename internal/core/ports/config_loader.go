package ports

import "go.liftoff.dev/liftoff/internal/core/domain"

// Project is the loaded project configuration.
type Project struct {
	// Workspace is the path to the .xcworkspace, relative to the root.
	Workspace string
	// Project is the path to the .xcodeproj, used when Workspace is empty.
	Project string
	// Scheme is the default Xcode scheme.
	Scheme string
	// Configuration is the default build configuration.
	Configuration string
	// BundleID is the app's bundle identifier.
	BundleID string
	// Root is the absolute project root the config was loaded from.
	Root string

	// Bundler configures the JS dev-server.
	Bundler BundlerConfig
	// Cache configures the build cache.
	Cache CacheConfig
	// FingerprintInputs are the file globs hashed into the cache key.
	FingerprintInputs []string
	// Categories are the notification categories registered on launch.
	Categories []domain.Category
	// DefaultSound is the notification sound used when content names none.
	DefaultSound string
}

// BundlerConfig configures the JS bundler dev-server.
type BundlerConfig struct {
	// StartArgv spawns the dev-server.
	StartArgv []string
	// ExportArgv writes a standalone bundle; the output directory is
	// appended as the last argument.
	ExportArgv []string
	// BundleOutput is the file the export must produce, relative to the
	// output directory.
	BundleOutput string
	// Port is the dev-server port.
	Port int
}

// CacheConfig configures the build cache.
type CacheConfig struct {
	// Dir is the local cache directory. Empty defaults to the user cache
	// directory.
	Dir string
	// RemoteURL is the base URL of the remote cache. Empty disables it.
	RemoteURL string
}

// ConfigLoader loads the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	Load(cwd string) (*Project, error)
}
