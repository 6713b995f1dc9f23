// Package runner implements the build-and-run pipeline.
package runner

import (
	"context"
	"path/filepath"
	"strconv"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner sequences the run pipeline: fingerprint, cache restore, build,
// simulator prep, rebundle, bundler start, install, launch, cache upload.
type Runner struct {
	builder       ports.Builder
	devices       ports.DeviceController
	cache         ports.BuildCache
	bundler       ports.Bundler
	fingerprinter ports.Fingerprinter
	telemetry     ports.Telemetry
	logger        ports.Logger
}

// New creates a Runner.
func New(
	builder ports.Builder,
	devices ports.DeviceController,
	cache ports.BuildCache,
	bundler ports.Bundler,
	fingerprinter ports.Fingerprinter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Runner {
	return &Runner{
		builder:       builder,
		devices:       devices,
		cache:         cache,
		bundler:       bundler,
		fingerprinter: fingerprinter,
		telemetry:     telemetry,
		logger:        logger,
	}
}

// Run executes the pipeline for the project with the given options.
func (r *Runner) Run(ctx context.Context, project *ports.Project, opts domain.RunOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if opts.Destination == domain.DestinationDevice {
		return r.runDevice(ctx, project, opts)
	}
	return r.runSimulator(ctx, project, opts)
}

// runDevice produces a signed archive export. Installing onto physical
// hardware is left to the platform tooling; the pipeline ends at the .ipa.
func (r *Runner) runDevice(ctx context.Context, project *ports.Project, opts domain.RunOptions) error {
	if opts.Rebundle {
		// Validate guarantees a binary is present for this branch.
		return r.rebundle(ctx, opts.Binary)
	}

	ctx, vertex := r.telemetry.Record(ctx, "export archive")
	ipa, err := r.builder.ExportArchive(ctx, ports.ArchiveRequest{
		BuildRequest: buildRequest(project, opts, "generic/platform=iOS"),
		OutputDir:    filepath.Join(project.Root, ".liftoff", "export"),
	})
	vertex.Complete(err)
	if err != nil {
		return err
	}

	r.logger.Info("exported archive: " + ipa)
	return nil
}

//nolint:cyclop // orchestration function
func (r *Runner) runSimulator(ctx context.Context, project *ports.Project, opts domain.RunOptions) error {
	useCache := !opts.NoBuildCache && opts.Binary == ""

	var fp domain.Fingerprint
	if useCache {
		var err error
		fp, err = r.fingerprint(ctx, project, opts)
		if err != nil {
			return err
		}
	}

	info, err := r.resolveBinary(ctx, project, opts, fp, useCache)
	if err != nil {
		return err
	}

	device, err := r.prepareDevice(ctx, opts.Device, info.BundleID)
	if err != nil {
		return err
	}

	if opts.Rebundle {
		if err := r.rebundleInto(ctx, device, info); err != nil {
			return err
		}
	}

	port, err := r.installAndStartBundler(ctx, device, info, opts.Port)
	if err != nil {
		return err
	}

	if err := r.launch(ctx, device, info, port); err != nil {
		return err
	}

	if useCache && info.FreshBuild {
		r.upload(ctx, domain.BuildRecord{
			Fingerprint:   fp,
			BinaryPath:    info.BinaryPath,
			Scheme:        opts.Scheme,
			Configuration: opts.Configuration,
		})
	}

	if opts.NonInteractive {
		if err := r.bundler.Stop(); err != nil {
			r.logger.Warn("failed to stop bundler: " + err.Error())
		}
		return nil
	}

	r.logger.Info("bundler attached on port " + strconv.Itoa(port) + ", press ctrl-c to stop")
	<-ctx.Done()
	if err := r.bundler.Stop(); err != nil {
		r.logger.Warn("failed to stop bundler: " + err.Error())
	}
	return nil
}

func (r *Runner) fingerprint(ctx context.Context, project *ports.Project, opts domain.RunOptions) (domain.Fingerprint, error) {
	_, vertex := r.telemetry.Record(ctx, "fingerprint project", ports.WithInternal())
	fp, err := r.fingerprinter.Fingerprint(project.Root, project.FingerprintInputs, opts.Scheme, opts.Configuration)
	vertex.Complete(err)
	if err != nil {
		return "", zerr.Wrap(err, "failed to fingerprint project")
	}
	return fp, nil
}

// resolveBinary selects the binary for this run: explicit path, cache hit,
// or a fresh build, in that order.
func (r *Runner) resolveBinary(
	ctx context.Context,
	project *ports.Project,
	opts domain.RunOptions,
	fp domain.Fingerprint,
	useCache bool,
) (*domain.LaunchInfo, error) {
	info := &domain.LaunchInfo{BundleID: project.BundleID}

	if opts.Binary != "" {
		info.BinaryPath = opts.Binary
		return info, nil
	}

	if useCache {
		ctx, vertex := r.telemetry.Record(ctx, "restore cached build")
		path, ok, err := r.cache.Resolve(ctx, fp)
		if err != nil {
			vertex.Complete(err)
			r.logger.Warn("build cache lookup failed: " + err.Error())
		} else if ok {
			vertex.Cached()
			info.BinaryPath = path
			return info, nil
		} else {
			vertex.Complete(nil)
		}
	}

	if opts.Rebundle {
		// Rebundling reuses an installed binary instead of building one.
		return info, nil
	}

	ctx, vertex := r.telemetry.Record(ctx, "build "+opts.Scheme)
	path, err := r.builder.Build(ctx, buildRequest(project, opts, "generic/platform=iOS Simulator"))
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	info.BinaryPath = path
	info.FreshBuild = true
	return info, nil
}

// rebundle exports a fresh JS bundle into the .app directory.
func (r *Runner) rebundle(ctx context.Context, binary string) error {
	ctx, vertex := r.telemetry.Record(ctx, "rebundle")
	err := r.bundler.ExportBundle(ctx, binary)
	vertex.Complete(err)
	return err
}

// rebundleInto exports a fresh JS bundle into the run's .app. Without a
// resolved binary the bundle is written into the app container already on
// the device, which also removes the need to install afterwards.
func (r *Runner) rebundleInto(ctx context.Context, device domain.Device, info *domain.LaunchInfo) error {
	if info.BinaryPath == "" {
		path, err := r.devices.AppContainer(ctx, device.UDID, info.BundleID)
		if err != nil || path == "" {
			return domain.ErrBinaryRequired
		}
		info.BinaryPath = path
		info.Preinstalled = true
	}

	if err := r.rebundle(ctx, info.BinaryPath); err != nil {
		return err
	}
	// A rebundled binary no longer matches its fingerprint.
	info.FreshBuild = false
	return nil
}

// prepareDevice resolves the target device, boots it and terminates any
// running instance of the app. Termination failure never aborts the run.
func (r *Runner) prepareDevice(ctx context.Context, query, bundleID string) (domain.Device, error) {
	device, err := r.devices.Find(ctx, query)
	if err != nil {
		return domain.Device{}, err
	}

	if !device.Booted {
		if err := r.devices.Boot(ctx, device.UDID); err != nil {
			return domain.Device{}, err
		}
	}

	if err := r.devices.Terminate(ctx, device.UDID, bundleID); err != nil {
		r.logger.Warn("failed to terminate running instance: " + err.Error())
	}

	return device, nil
}

// installAndStartBundler installs the binary and starts the bundler. The two
// are independent until launch, so they run concurrently.
func (r *Runner) installAndStartBundler(ctx context.Context, device domain.Device, info *domain.LaunchInfo, portOverride int) (int, error) {
	var port int

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		bctx, vertex := r.telemetry.Record(gctx, "start bundler")
		p, err := r.bundler.Start(bctx, portOverride)
		vertex.Complete(err)
		if err != nil {
			return zerr.Wrap(err, "failed to start bundler")
		}
		port = p
		return nil
	})

	g.Go(func() error {
		if info.Preinstalled {
			// The bundle was rewritten inside the app container on the
			// device, so there is nothing to copy over.
			return nil
		}
		ictx, vertex := r.telemetry.Record(gctx, "install app")
		err := r.devices.Install(ictx, device.UDID, info.BinaryPath)
		vertex.Complete(err)
		if err != nil {
			return zerr.Wrap(err, "failed to install app")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return port, nil
}

func (r *Runner) launch(ctx context.Context, device domain.Device, info *domain.LaunchInfo, port int) error {
	ctx, vertex := r.telemetry.Record(ctx, "launch "+info.BundleID)
	pid, err := r.devices.Launch(ctx, device.UDID, info.BundleID, map[string]string{
		"RCT_METRO_PORT": strconv.Itoa(port),
	})
	vertex.Complete(err)
	if err != nil {
		return err
	}

	r.logger.Info("launched " + info.BundleID + " (pid " + strconv.Itoa(pid) + ") on " + device.Name)
	return nil
}

// upload stores the fresh binary in the build cache. Upload failures are
// warnings: the app is already running, a cold cache only costs the next run.
func (r *Runner) upload(ctx context.Context, rec domain.BuildRecord) {
	ctx, vertex := r.telemetry.Record(ctx, "upload to build cache", ports.WithInternal())
	err := r.cache.Upload(ctx, rec)
	vertex.Complete(err)
	if err != nil {
		r.logger.Warn("build cache upload failed: " + err.Error())
	}
}

func buildRequest(project *ports.Project, opts domain.RunOptions, destination string) ports.BuildRequest {
	return ports.BuildRequest{
		Workspace:       workspacePath(project),
		Project:         projectPath(project),
		Scheme:          opts.Scheme,
		Configuration:   opts.Configuration,
		Destination:     destination,
		DerivedDataPath: filepath.Join(project.Root, ".liftoff", "derived"),
	}
}

func workspacePath(p *ports.Project) string {
	if p.Workspace == "" {
		return ""
	}
	return filepath.Join(p.Root, p.Workspace)
}

func projectPath(p *ports.Project) string {
	if p.Project == "" {
		return ""
	}
	return filepath.Join(p.Root, p.Project)
}
