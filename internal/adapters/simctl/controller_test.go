package simctl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.liftoff.dev/liftoff/internal/adapters/simctl"
	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.liftoff.dev/liftoff/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const deviceListJSON = `{
  "devices": {
    "com.apple.CoreSimulator.SimRuntime.iOS-17-2": [
      {"udid": "AAAA-1111", "name": "iPhone 15", "state": "Shutdown", "isAvailable": true},
      {"udid": "BBBB-2222", "name": "iPhone 15 Pro", "state": "Booted", "isAvailable": true}
    ]
  }
}`

func newController(t *testing.T) (*simctl.Controller, *mocks.MockCommandRunner, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	return simctl.NewController(runner, logger), runner, logger
}

func TestController_Find_ByName(t *testing.T) {
	controller, runner, _ := newController(t)

	runner.EXPECT().
		Output(gomock.Any(), ports.Command{Argv: []string{"xcrun", "simctl", "list", "-j", "devices"}}).
		Return([]byte(deviceListJSON), nil)

	device, err := controller.Find(context.Background(), "iPhone 15")
	require.NoError(t, err)
	require.Equal(t, "AAAA-1111", device.UDID)
}

func TestController_Find_ByUDID(t *testing.T) {
	controller, runner, _ := newController(t)

	runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return([]byte(deviceListJSON), nil)

	device, err := controller.Find(context.Background(), "BBBB-2222")
	require.NoError(t, err)
	require.Equal(t, "iPhone 15 Pro", device.Name)
}

func TestController_Find_EmptyQueryPrefersBooted(t *testing.T) {
	controller, runner, _ := newController(t)

	runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return([]byte(deviceListJSON), nil)

	device, err := controller.Find(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "BBBB-2222", device.UDID)
	require.True(t, device.Booted)
}

func TestController_Find_Unknown(t *testing.T) {
	controller, runner, _ := newController(t)

	runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return([]byte(deviceListJSON), nil)

	_, err := controller.Find(context.Background(), "iPhone 3G")
	require.ErrorIs(t, err, domain.ErrDeviceNotFound)
}

func TestController_Find_NoDevices(t *testing.T) {
	controller, runner, _ := newController(t)

	runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return([]byte(`{"devices":{}}`), nil)

	_, err := controller.Find(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrDeviceNotFound)
}

func TestController_Boot_AlreadyBootedIsBenign(t *testing.T) {
	controller, runner, _ := newController(t)

	runner.EXPECT().
		Run(gomock.Any(), ports.Command{Argv: []string{"xcrun", "simctl", "boot", "AAAA-1111"}}).
		Return(zerr.New("Unable to boot device in current state: Booted"))

	require.NoError(t, controller.Boot(context.Background(), "AAAA-1111"))
}

func TestController_Terminate_FailureIsSwallowed(t *testing.T) {
	controller, runner, logger := newController(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(zerr.New("app not running"))
	logger.EXPECT().Warn(gomock.Any())

	require.NoError(t, controller.Terminate(context.Background(), "AAAA-1111", "com.example.app"))
}

func TestController_Launch_PrefixesEnvironment(t *testing.T) {
	controller, runner, _ := newController(t)

	runner.EXPECT().
		Output(gomock.Any(), ports.Command{
			Argv: []string{"xcrun", "simctl", "launch", "AAAA-1111", "com.example.app"},
			Env:  map[string]string{"SIMCTL_CHILD_RCT_METRO_PORT": "8081"},
		}).
		Return([]byte("com.example.app: 4242\n"), nil)

	pid, err := controller.Launch(context.Background(), "AAAA-1111", "com.example.app", map[string]string{
		"RCT_METRO_PORT": "8081",
	})
	require.NoError(t, err)
	require.Equal(t, 4242, pid)
}

func TestController_AppContainer_NotInstalled(t *testing.T) {
	controller, runner, _ := newController(t)

	runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return(nil, zerr.New("No such file or directory"))

	path, err := controller.AppContainer(context.Background(), "AAAA-1111", "com.example.app")
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestController_Push_SendsPayloadOnStdin(t *testing.T) {
	controller, runner, _ := newController(t)

	payload := []byte(`{"aps":{"alert":{"title":"hi"}}}`)
	runner.EXPECT().
		Run(gomock.Any(), ports.Command{
			Argv:  []string{"xcrun", "simctl", "push", "AAAA-1111", "com.example.app", "-"},
			Stdin: payload,
		}).
		Return(nil)

	require.NoError(t, controller.Push(context.Background(), "AAAA-1111", "com.example.app", payload))
}
