package config

import "context"

// Settings carries the persistent CLI flags into component construction,
// which happens after flag parsing but before any adapter touches the
// filesystem.
type Settings struct {
	// Path is the configuration file, relative to the working directory or
	// absolute.
	Path string
	// Quiet suppresses the progress rendering.
	Quiet bool
}

type settingsKey struct{}

// WithSettings returns a context carrying the CLI settings.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// SettingsFrom returns the CLI settings from the context, defaulting to the
// standard config filename.
func SettingsFrom(ctx context.Context) Settings {
	if s, ok := ctx.Value(settingsKey{}).(Settings); ok {
		if s.Path == "" {
			s.Path = DefaultFilename
		}
		return s
	}
	return Settings{Path: DefaultFilename}
}
