// Package shell provides the external command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command with the merged environment.
// The environment is layered with the following priority (low to high):
// 1. os.Environ() (system base)
// 2. cmd.Env (call-site overrides, PATH entries prepended)
//
// Output is streamed line-wise to the telemetry vertex carried by ctx when
// one is present, otherwise to the logger.
func (r *Runner) Run(ctx context.Context, cmd ports.Command) error {
	c, err := r.prepare(ctx, cmd)
	if err != nil {
		return err
	}

	if v, ok := ports.VertexFromContext(ctx); ok {
		c.Stdout = v.Stdout()
		c.Stderr = v.Stderr()
	} else {
		c.Stdout = &logWriter{logger: r.logger, level: domain.LogLevelInfo}
		c.Stderr = &logWriter{logger: r.logger, level: domain.LogLevelError}
	}

	if err := c.Run(); err != nil {
		return wrapExit(err, cmd)
	}
	return nil
}

// Output executes the command and returns its combined stdout.
func (r *Runner) Output(ctx context.Context, cmd ports.Command) ([]byte, error) {
	c, err := r.prepare(ctx, cmd)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = &logWriter{logger: r.logger, level: domain.LogLevelError}

	if err := c.Run(); err != nil {
		return nil, wrapExit(err, cmd)
	}
	return out.Bytes(), nil
}

func (r *Runner) prepare(ctx context.Context, cmd ports.Command) (*exec.Cmd, error) {
	if len(cmd.Argv) == 0 {
		return nil, zerr.New("empty command")
	}

	name := cmd.Argv[0]
	args := cmd.Argv[1:]

	cmdEnv := resolveEnvironment(os.Environ(), cmd.Env)

	// Resolve the executable against the merged environment's PATH so that
	// call-site PATH entries take effect.
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, args...) //nolint:gosec // caller provides the command
	if len(c.Args) > 0 {
		c.Args[0] = name
	}
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	if cmd.Stdin != nil {
		c.Stdin = bytes.NewReader(cmd.Stdin)
	}
	c.Env = cmdEnv
	return c, nil
}

func wrapExit(err error, cmd ports.Command) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	wrapped := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	return zerr.With(wrapped, "command", cmd.Argv[0])
}

type logWriter struct {
	logger ports.Logger
	level  domain.LogLevel
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		switch w.level {
		case domain.LogLevelError:
			w.logger.Error(zerr.New(line))
		case domain.LogLevelWarn:
			w.logger.Warn(line)
		default:
			w.logger.Info(line)
		}
	}
	return len(p), nil
}

// resolveEnvironment merges environment variables with the defined priority.
// PATH entries from extra are prepended to the system PATH.
func resolveEnvironment(sysEnv []string, extra map[string]string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range extra {
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				envMap[k] = v + string(os.PathListSeparator) + sysPath
			} else {
				envMap[k] = v
			}
		} else {
			envMap[k] = v
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
