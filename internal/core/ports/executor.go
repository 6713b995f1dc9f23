package ports

import "context"

// Command is a single external tool invocation.
type Command struct {
	// Argv is the command and its arguments. Argv[0] is resolved against
	// PATH unless absolute.
	Argv []string
	// Dir is the working directory. Empty means the process default.
	Dir string
	// Env holds extra environment variables layered over the system
	// environment. PATH entries are prepended.
	Env map[string]string
	// Stdin, when non-nil, is fed to the process as standard input.
	Stdin []byte
}

// CommandRunner executes external tool invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run executes the command, streaming its output to the logger or the
	// telemetry vertex carried by ctx. Failure reports the exit code as
	// error metadata.
	Run(ctx context.Context, cmd Command) error

	// Output executes the command and returns its combined stdout.
	Output(ctx context.Context, cmd Command) ([]byte, error)
}
