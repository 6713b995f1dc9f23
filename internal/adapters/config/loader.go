// Package config provides the configuration loader for liftoff.
package config

import (
	"os"
	"path/filepath"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the project configuration file name.
const DefaultFilename = "liftoff.yaml"

const defaultBundlerPort = 8081

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*ports.Project, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(cwd, name)
	}
	return Load(path)
}

// Load reads a configuration file from the given path.
func Load(path string) (*ports.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file liftoffFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve project root")
	}

	project, err := file.toProject(root)
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (f *liftoffFile) toProject(root string) (*ports.Project, error) {
	if f.App.Workspace == "" && f.App.Project == "" {
		return nil, zerr.New("config must name a workspace or a project")
	}
	if f.App.BundleID == "" {
		return nil, zerr.New("config must name a bundle identifier")
	}

	configuration := f.App.Configuration
	if configuration == "" {
		configuration = "Debug"
	}

	port := f.Bundler.Port
	if port == 0 {
		port = defaultBundlerPort
	}

	categories := make([]domain.Category, len(f.Notifications.Categories))
	copy(categories, f.Notifications.Categories)

	return &ports.Project{
		Workspace:     f.App.Workspace,
		Project:       f.App.Project,
		Scheme:        f.App.Scheme,
		Configuration: configuration,
		BundleID:      f.App.BundleID,
		Root:          root,
		Bundler: ports.BundlerConfig{
			StartArgv:    f.Bundler.Start,
			ExportArgv:   f.Bundler.Export,
			BundleOutput: f.Bundler.BundleOutput,
			Port:         port,
		},
		Cache: ports.CacheConfig{
			Dir:       f.Cache.Dir,
			RemoteURL: f.Cache.Remote,
		},
		FingerprintInputs: f.Cache.Inputs,
		Categories:        categories,
		DefaultSound:      f.Notifications.DefaultSound,
	}, nil
}
