package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.liftoff.dev/liftoff/internal/adapters/notify"
	"go.liftoff.dev/liftoff/internal/adapters/telemetry"
	"go.liftoff.dev/liftoff/internal/app"
	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.liftoff.dev/liftoff/internal/core/ports/mocks"
	"go.liftoff.dev/liftoff/internal/engine/runner"
	"go.uber.org/mock/gomock"
)

type appFixture struct {
	app     *app.App
	devices *mocks.MockDeviceController
	builder *mocks.MockBuilder
	bundler *mocks.MockBundler
	project *ports.Project
}

func newApp(t *testing.T) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &appFixture{
		devices: mocks.NewMockDeviceController(ctrl),
		builder: mocks.NewMockBuilder(ctrl),
		bundler: mocks.NewMockBundler(ctrl),
	}
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.project = &ports.Project{
		Workspace:     "ios/App.xcworkspace",
		Scheme:        "App",
		Configuration: "Release",
		BundleID:      "com.example.app",
		Root:          t.TempDir(),
		Bundler:       ports.BundlerConfig{Port: 8081},
		Categories: []domain.Category{
			{ID: "MESSAGE", Actions: []domain.Action{{ID: "REPLY", Title: "Reply"}}},
		},
	}

	run := runner.New(
		f.builder, f.devices, mocks.NewMockBuildCache(ctrl), f.bundler,
		mocks.NewMockFingerprinter(ctrl), telemetry.NewNoOp(), logger,
	)
	notifiers := notify.NewFactory(f.devices, logger, f.project)

	f.app = app.New(f.project, run, notifiers, f.devices, logger)
	return f
}

func TestApp_Run_DefaultsFromProject(t *testing.T) {
	f := newApp(t)

	device := domain.Device{UDID: "AAAA-1111", Name: "iPhone 15", Booted: true}
	f.devices.EXPECT().Find(gomock.Any(), "").Return(device, nil)
	f.devices.EXPECT().Terminate(gomock.Any(), device.UDID, "com.example.app").Return(nil)
	f.bundler.EXPECT().Start(gomock.Any(), 0).Return(8081, nil)
	f.devices.EXPECT().Install(gomock.Any(), device.UDID, "/prebuilt/App.app").Return(nil)
	f.devices.EXPECT().
		Launch(gomock.Any(), device.UDID, "com.example.app", gomock.Any()).
		Return(1, nil)
	f.bundler.EXPECT().Stop().Return(nil)

	// Scheme and configuration come from the project when unset.
	err := f.app.Run(context.Background(), domain.RunOptions{
		Binary:         "/prebuilt/App.app",
		NonInteractive: true,
	})
	require.NoError(t, err)
}

func TestApp_Run_WrapsPipelineError(t *testing.T) {
	f := newApp(t)

	f.devices.EXPECT().Find(gomock.Any(), "").Return(domain.Device{}, domain.ErrDeviceNotFound)

	err := f.app.Run(context.Background(), domain.RunOptions{
		Binary:         "/prebuilt/App.app",
		NonInteractive: true,
	})
	require.ErrorIs(t, err, domain.ErrDeviceNotFound)
	require.Contains(t, err.Error(), "run failed")
}

func TestApp_Notifier_RegistersCategories(t *testing.T) {
	f := newApp(t)

	device := domain.Device{UDID: "AAAA-1111", Name: "iPhone 15", Booted: true}
	f.devices.EXPECT().Find(gomock.Any(), "iPhone 15").Return(device, nil)

	n, err := f.app.Notifier(context.Background(), "iPhone 15")
	require.NoError(t, err)
	require.NotNil(t, n)
}

func TestApp_Notifier_DeviceNotFound(t *testing.T) {
	f := newApp(t)

	f.devices.EXPECT().Find(gomock.Any(), "iPhone 3G").Return(domain.Device{}, domain.ErrDeviceNotFound)

	_, err := f.app.Notifier(context.Background(), "iPhone 3G")
	require.ErrorIs(t, err, domain.ErrDeviceNotFound)
}
