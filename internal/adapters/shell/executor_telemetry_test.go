package shell_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.liftoff.dev/liftoff/internal/adapters/shell"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.liftoff.dev/liftoff/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_WithVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	// Logger shouldn't be used when a vertex is present
	mockLogger.EXPECT().Info(gomock.Any()).Times(0)
	mockLogger.EXPECT().Error(gomock.Any()).Times(0)

	mockVertex := mocks.NewMockVertex(ctrl)

	var stdoutBuf bytes.Buffer
	var stderrBuf bytes.Buffer

	mockVertex.EXPECT().Stdout().Return(&stdoutBuf).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	ctx := ports.ContextWithVertex(context.Background(), mockVertex)

	err := runner.Run(ctx, ports.Command{
		Argv: []string{"sh", "-c", "echo hello to stdout; echo hello to stderr >&2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)

	require.Contains(t, stdoutBuf.String(), "hello to stdout")
	require.Contains(t, stderrBuf.String(), "hello to stderr")
}
