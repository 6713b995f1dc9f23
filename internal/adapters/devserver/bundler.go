// Package devserver manages the local JS bundler dev-server process.
package devserver

import (
	"context"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"time"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	pollInterval    = 100 * time.Millisecond
	maxPollDuration = 30 * time.Second
)

var _ ports.Bundler = (*Bundler)(nil)

// Bundler implements ports.Bundler by spawning the configured bundler argv
// in its own process group and polling its TCP port until it accepts
// connections.
type Bundler struct {
	cfg    ports.BundlerConfig
	root   string
	runner ports.CommandRunner
	logger ports.Logger

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewBundler creates a new Bundler for the project at root.
func NewBundler(cfg ports.BundlerConfig, root string, runner ports.CommandRunner, logger ports.Logger) *Bundler {
	return &Bundler{cfg: cfg, root: root, runner: runner, logger: logger}
}

// Start spawns the dev-server and blocks until its port accepts connections.
// A positive port overrides the configured one, and a server already
// listening on the port is reused.
func (b *Bundler) Start(ctx context.Context, port int) (int, error) {
	if port <= 0 {
		port = b.cfg.Port
	}

	if portOpen(port) {
		b.logger.Info("bundler already listening on port " + strconv.Itoa(port))
		return port, nil
	}

	if len(b.cfg.StartArgv) == 0 {
		return 0, zerr.New("no bundler start command configured")
	}

	logPath := filepath.Join(b.root, ".liftoff", "bundler.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return 0, zerr.Wrap(err, "failed to create bundler log directory")
	}
	//nolint:gosec // log path is derived from the project root
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to open bundler log")
	}

	//nolint:gosec // argv comes from the project config
	cmd := exec.Command(b.cfg.StartArgv[0], b.cfg.StartArgv[1:]...)
	cmd.Dir = b.root
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.Env = append(os.Environ(), "RCT_METRO_PORT="+strconv.Itoa(port))
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return 0, zerr.Wrap(err, "failed to spawn bundler")
	}

	b.mu.Lock()
	b.cmd = cmd
	b.mu.Unlock()

	go func() {
		_ = cmd.Wait()
		_ = logFile.Close()
	}()

	if err := b.waitForPort(ctx, port); err != nil {
		_ = b.Stop()
		return 0, err
	}

	return port, nil
}

// Stop terminates the dev-server's process group. Stopping a bundler that
// was never started (or one that was reused) is a no-op.
func (b *Bundler) Stop() error {
	b.mu.Lock()
	cmd := b.cmd
	b.cmd = nil
	b.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return nil
	}

	// Negative pid signals the whole process group, catching workers the
	// bundler forked.
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM); err != nil {
		return zerr.Wrap(err, "failed to stop bundler")
	}
	return nil
}

// ExportBundle writes a standalone JS bundle into outDir and verifies the
// configured bundle output exists.
func (b *Bundler) ExportBundle(ctx context.Context, outDir string) error {
	if len(b.cfg.ExportArgv) == 0 {
		return zerr.New("no bundler export command configured")
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create bundle output directory")
	}

	argv := append(append([]string{}, b.cfg.ExportArgv...), outDir)
	if err := b.runner.Run(ctx, ports.Command{Argv: argv, Dir: b.root}); err != nil {
		return zerr.Wrap(err, "bundle export failed")
	}

	output := b.cfg.BundleOutput
	if output == "" {
		output = "main.jsbundle"
	}
	bundlePath := filepath.Join(outDir, output)
	if _, err := os.Stat(bundlePath); err != nil {
		return zerr.With(domain.ErrBundleOutputMissing, "path", bundlePath)
	}
	return nil
}

// waitForPort polls until the port accepts TCP connections.
func (b *Bundler) waitForPort(ctx context.Context, port int) error {
	start := time.Now()
	for time.Since(start) < maxPollDuration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if portOpen(port) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
	return zerr.With(zerr.New("bundler failed to start within timeout"), "port", port)
}

func portOpen(port int) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), pollInterval)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
