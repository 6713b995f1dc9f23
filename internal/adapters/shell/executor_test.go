package shell_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.liftoff.dev/liftoff/internal/adapters/shell"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.liftoff.dev/liftoff/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	// Expect Info to be called once per line
	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Argv: []string{"sh", "-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestRunner_Run_EnvironmentVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("test-value-123").Times(1)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Argv: []string{"sh", "-c", "echo $MY_TEST_VAR"},
		Env: map[string]string{
			"MY_TEST_VAR": "test-value-123",
		},
		Dir: t.TempDir(),
	})
	require.NoError(t, err)
}

func TestRunner_Run_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Argv: []string{"sh", "-c", "exit 42"},
		Dir:  t.TempDir(),
	})
	require.Error(t, err)
	if !strings.Contains(err.Error(), "command failed") {
		t.Errorf("Run() error should mention command failure: %v", err)
	}
}

func TestRunner_Run_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Argv: []string{"nonexistent-command-xyz123"},
		Dir:  t.TempDir(),
	})
	require.Error(t, err)
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty command")
}

func TestRunner_Run_Stdin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("from-stdin").Times(1)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Argv:  []string{"cat"},
		Stdin: []byte("from-stdin\n"),
		Dir:   t.TempDir(),
	})
	require.NoError(t, err)
}

func TestRunner_Output_CapturesStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger)

	out, err := runner.Output(context.Background(), ports.Command{
		Argv: []string{"sh", "-c", "echo captured"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	require.Equal(t, "captured\n", string(out))
}

func TestRunner_Output_StderrGoesToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	runner := shell.NewRunner(mockLogger)

	out, err := runner.Output(context.Background(), ports.Command{
		Argv: []string{"sh", "-c", "echo noise >&2; echo clean"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	require.Equal(t, "clean\n", string(out))
}

func TestRunner_Run_AbsolutePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Argv: []string{"/bin/sh", "-c", "echo test"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}
