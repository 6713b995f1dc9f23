// Package app implements the application layer for liftoff.
package app

import (
	"context"

	"go.liftoff.dev/liftoff/internal/adapters/notify"
	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.liftoff.dev/liftoff/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	project   *ports.Project
	runner    *runner.Runner
	notifiers *notify.Factory
	devices   ports.DeviceController
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	project *ports.Project,
	run *runner.Runner,
	notifiers *notify.Factory,
	devices ports.DeviceController,
	logger ports.Logger,
) *App {
	return &App{
		project:   project,
		runner:    run,
		notifiers: notifiers,
		devices:   devices,
		logger:    logger,
	}
}

// Run executes the build-and-run pipeline. Options default to the project
// configuration where unset.
func (a *App) Run(ctx context.Context, opts domain.RunOptions) error {
	if opts.Scheme == "" {
		opts.Scheme = a.project.Scheme
	}
	if opts.Configuration == "" {
		opts.Configuration = a.project.Configuration
	}
	if opts.Destination == "" {
		opts.Destination = domain.DestinationSimulator
	}

	if err := a.runner.Run(ctx, a.project, opts); err != nil {
		return zerr.Wrap(err, "run failed")
	}
	return nil
}

// Categories returns the notification categories configured for the project.
func (a *App) Categories() []domain.Category {
	return a.project.Categories
}

// Notifier resolves a notifier bound to the queried device, registering the
// project's notification categories on the way.
func (a *App) Notifier(ctx context.Context, deviceQuery string) (ports.Notifier, error) {
	device, err := a.devices.Find(ctx, deviceQuery)
	if err != nil {
		return nil, err
	}

	n, err := a.notifiers.For(device.UDID)
	if err != nil {
		return nil, err
	}

	if len(a.project.Categories) > 0 {
		if err := n.SetCategories(ctx, a.project.Categories); err != nil {
			return nil, err
		}
	}
	return n, nil
}
