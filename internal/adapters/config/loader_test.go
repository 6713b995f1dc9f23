package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.liftoff.dev/liftoff/internal/adapters/config"
)

const fullConfig = `version: "1"
app:
  workspace: ios/App.xcworkspace
  scheme: App
  configuration: Release
  bundleId: com.example.app
bundler:
  start: ["npx", "react-native", "start"]
  export: ["npx", "react-native", "bundle"]
  bundleOutput: main.jsbundle
  port: 8088
cache:
  dir: /tmp/liftoff-cache
  remote: https://cache.example.com
  inputs:
    - package.json
    - ios/Podfile.lock
notifications:
  defaultSound: default
  categories:
    - id: MESSAGE
      actions:
        - id: REPLY
          title: Reply
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(content), 0o644))
	return dir
}

func TestLoad_FullConfig(t *testing.T) {
	dir := writeConfig(t, fullConfig)

	loader := &config.FileConfigLoader{}
	project, err := loader.Load(dir)
	require.NoError(t, err)

	require.Equal(t, "ios/App.xcworkspace", project.Workspace)
	require.Equal(t, "App", project.Scheme)
	require.Equal(t, "Release", project.Configuration)
	require.Equal(t, "com.example.app", project.BundleID)
	require.Equal(t, dir, project.Root)

	require.Equal(t, []string{"npx", "react-native", "start"}, project.Bundler.StartArgv)
	require.Equal(t, 8088, project.Bundler.Port)

	require.Equal(t, "/tmp/liftoff-cache", project.Cache.Dir)
	require.Equal(t, "https://cache.example.com", project.Cache.RemoteURL)
	require.Equal(t, []string{"package.json", "ios/Podfile.lock"}, project.FingerprintInputs)

	require.Equal(t, "default", project.DefaultSound)
	require.Len(t, project.Categories, 1)
	require.Equal(t, "MESSAGE", project.Categories[0].ID)
	require.Len(t, project.Categories[0].Actions, 1)
	require.Equal(t, "REPLY", project.Categories[0].Actions[0].ID)
}

func TestLoad_Defaults(t *testing.T) {
	dir := writeConfig(t, `app:
  project: ios/App.xcodeproj
  scheme: App
  bundleId: com.example.app
`)

	loader := &config.FileConfigLoader{}
	project, err := loader.Load(dir)
	require.NoError(t, err)

	require.Equal(t, "Debug", project.Configuration)
	require.Equal(t, 8081, project.Bundler.Port)
	require.Empty(t, project.Cache.RemoteURL)
}

func TestLoad_MissingContainer(t *testing.T) {
	dir := writeConfig(t, `app:
  scheme: App
  bundleId: com.example.app
`)

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "workspace or a project")
}

func TestLoad_MissingBundleID(t *testing.T) {
	dir := writeConfig(t, `app:
  workspace: ios/App.xcworkspace
  scheme: App
`)

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bundle identifier")
}

func TestLoad_MissingFile(t *testing.T) {
	loader := &config.FileConfigLoader{}
	_, err := loader.Load(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "app: [not a mapping")

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_CustomFilename(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(`app:
  workspace: ios/App.xcworkspace
  scheme: App
  bundleId: com.example.app
`), 0o644))

	loader := &config.FileConfigLoader{Filename: "custom.yaml"}
	project, err := loader.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "App", project.Scheme)
}

func TestLoad_AbsoluteFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elsewhere.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`app:
  workspace: ios/App.xcworkspace
  scheme: App
  bundleId: com.example.app
`), 0o644))

	// An absolute path must win over the working directory.
	loader := &config.FileConfigLoader{Filename: path}
	project, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "App", project.Scheme)
	require.Equal(t, filepath.Dir(path), project.Root)
}

func TestSettingsFrom_Defaults(t *testing.T) {
	s := config.SettingsFrom(context.Background())
	require.Equal(t, config.DefaultFilename, s.Path)
	require.False(t, s.Quiet)
}

func TestSettingsRoundtrip(t *testing.T) {
	ctx := config.WithSettings(context.Background(), config.Settings{Path: "custom.yaml", Quiet: true})

	s := config.SettingsFrom(ctx)
	require.Equal(t, "custom.yaml", s.Path)
	require.True(t, s.Quiet)
}
