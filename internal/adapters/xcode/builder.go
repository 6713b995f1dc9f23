// Package xcode shells out to xcodebuild for native builds and archive
// exports.
package xcode

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Builder = (*Builder)(nil)

// Builder implements ports.Builder over the xcodebuild CLI.
type Builder struct {
	runner ports.CommandRunner
}

// NewBuilder creates a new Builder.
func NewBuilder(runner ports.CommandRunner) *Builder {
	return &Builder{runner: runner}
}

// Build compiles the scheme and returns the path to the built .app, resolved
// from the project's build settings.
func (b *Builder) Build(ctx context.Context, req ports.BuildRequest) (string, error) {
	argv := append([]string{"xcodebuild"}, containerArgs(req)...)
	argv = append(argv,
		"-scheme", req.Scheme,
		"-configuration", req.Configuration,
		"-destination", req.Destination,
	)
	if req.DerivedDataPath != "" {
		argv = append(argv, "-derivedDataPath", req.DerivedDataPath)
	}
	argv = append(argv, "build")

	if err := b.runner.Run(ctx, ports.Command{Argv: argv}); err != nil {
		return "", zerr.Wrap(err, "xcodebuild failed")
	}

	settings, err := b.buildSettings(ctx, req)
	if err != nil {
		return "", err
	}

	buildDir := settings["TARGET_BUILD_DIR"]
	product := settings["FULL_PRODUCT_NAME"]
	if buildDir == "" || product == "" {
		return "", zerr.New("build settings do not name a product")
	}

	binary := filepath.Join(buildDir, product)
	if _, err := os.Stat(binary); err != nil {
		return "", zerr.With(zerr.Wrap(err, "built product missing"), "path", binary)
	}
	return binary, nil
}

// ExportArchive archives the scheme and exports a signed .ipa.
func (b *Builder) ExportArchive(ctx context.Context, req ports.ArchiveRequest) (string, error) {
	if err := os.MkdirAll(req.OutputDir, 0o750); err != nil {
		return "", zerr.Wrap(err, "failed to create export directory")
	}

	archivePath := filepath.Join(req.OutputDir, req.Scheme+".xcarchive")

	argv := append([]string{"xcodebuild", "archive"}, containerArgs(req.BuildRequest)...)
	argv = append(argv,
		"-scheme", req.Scheme,
		"-configuration", req.Configuration,
		"-destination", req.Destination,
		"-archivePath", archivePath,
	)
	if err := b.runner.Run(ctx, ports.Command{Argv: argv}); err != nil {
		return "", zerr.Wrap(err, "xcodebuild archive failed")
	}

	plistPath := filepath.Join(req.OutputDir, "ExportOptions.plist")
	if err := writeExportOptions(plistPath, req); err != nil {
		return "", err
	}

	exportArgv := []string{
		"xcodebuild", "-exportArchive",
		"-archivePath", archivePath,
		"-exportOptionsPlist", plistPath,
		"-exportPath", req.OutputDir,
	}
	if err := b.runner.Run(ctx, ports.Command{Argv: exportArgv}); err != nil {
		return "", zerr.Wrap(err, "archive export failed")
	}

	ipa, err := findIPA(req.OutputDir)
	if err != nil {
		return "", err
	}
	return ipa, nil
}

// buildSettings queries xcodebuild for the scheme's resolved build settings.
func (b *Builder) buildSettings(ctx context.Context, req ports.BuildRequest) (map[string]string, error) {
	argv := append([]string{"xcodebuild"}, containerArgs(req)...)
	argv = append(argv,
		"-scheme", req.Scheme,
		"-configuration", req.Configuration,
		"-destination", req.Destination,
	)
	if req.DerivedDataPath != "" {
		argv = append(argv, "-derivedDataPath", req.DerivedDataPath)
	}
	argv = append(argv, "-showBuildSettings", "-json")

	out, err := b.runner.Output(ctx, ports.Command{Argv: argv})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query build settings")
	}

	return parseBuildSettings(out)
}

func containerArgs(req ports.BuildRequest) []string {
	if req.Workspace != "" {
		return []string{"-workspace", req.Workspace}
	}
	if req.Project != "" {
		return []string{"-project", req.Project}
	}
	return nil
}

func findIPA(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read export directory")
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".ipa") {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", zerr.With(zerr.New("export produced no ipa"), "dir", dir)
}
