package config

import "go.liftoff.dev/liftoff/internal/core/domain"

// liftoffFile represents the structure of the liftoff.yaml configuration file.
type liftoffFile struct {
	Version       string           `yaml:"version"`
	App           appDTO           `yaml:"app"`
	Bundler       bundlerDTO       `yaml:"bundler"`
	Cache         cacheDTO         `yaml:"cache"`
	Notifications notificationsDTO `yaml:"notifications"`
}

type appDTO struct {
	Workspace     string `yaml:"workspace"`
	Project       string `yaml:"project"`
	Scheme        string `yaml:"scheme"`
	Configuration string `yaml:"configuration"`
	BundleID      string `yaml:"bundleId"`
}

type bundlerDTO struct {
	Start        []string `yaml:"start"`
	Export       []string `yaml:"export"`
	BundleOutput string   `yaml:"bundleOutput"`
	Port         int      `yaml:"port"`
}

type cacheDTO struct {
	Dir    string   `yaml:"dir"`
	Remote string   `yaml:"remote"`
	Inputs []string `yaml:"inputs"`
}

type notificationsDTO struct {
	DefaultSound string            `yaml:"defaultSound"`
	Categories   []domain.Category `yaml:"categories"`
}
