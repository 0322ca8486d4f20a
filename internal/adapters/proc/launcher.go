// Package proc provides the external process launcher adapter.
package proc

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/access-ci/nvport/internal/core/domain"
	"github.com/access-ci/nvport/internal/core/ports"
	"go.trai.ch/zerr"
)

// Launcher implements ports.Launcher using os/exec. It keeps a registry of
// the processes it spawned so FindProcess can resolve them without a system
// scan; processes started by other tools are found through the platform
// process table.
type Launcher struct {
	logger ports.Logger

	mu      sync.Mutex
	spawned map[string][]*childHandle
}

// NewLauncher creates a new Launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{
		logger:  logger,
		spawned: make(map[string][]*childHandle),
	}
}

// Run executes the program and waits for it to exit. Stdout and stderr are
// streamed to the logger.
func (l *Launcher) Run(ctx context.Context, path string, args ...string) error {
	cmd := exec.CommandContext(ctx, path, args...) //nolint:gosec // executable path comes from config
	cmd.Stdout = &logWriter{logger: l.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: l.logger, level: "warn"}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrExternalProcess, err.Error()), "path", path), "exit_code", exitCode)
	}

	return nil
}

// Spawn starts the program detached and returns a handle. The process may
// outlive the call; the caller owns termination.
func (l *Launcher) Spawn(ctx context.Context, path string, args ...string) (ports.ProcessHandle, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cmd := exec.Command(path, args...) //nolint:gosec // executable path comes from config
	cmd.SysProcAttr = detachedSysProcAttr()

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrExternalProcess, "failed to start process"), "path", path)
	}

	h := &childHandle{cmd: cmd, done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(h.done)
	}()

	name := baseName(path)
	l.mu.Lock()
	l.spawned[name] = append(l.spawned[name], h)
	l.mu.Unlock()

	return h, nil
}

// FindProcess looks up a running process by executable name. Own spawns are
// consulted first; otherwise the platform process table is scanned. Returns
// nil, nil when nothing matches.
func (l *Launcher) FindProcess(name string) (ports.ProcessHandle, error) {
	name = baseName(name)

	l.mu.Lock()
	for _, h := range l.spawned[name] {
		if h.Running() {
			l.mu.Unlock()
			return h, nil
		}
	}
	l.mu.Unlock()

	pid, err := findPID(name)
	if err != nil {
		return nil, err
	}
	if pid == 0 {
		return nil, nil
	}
	return &pidHandle{pid: pid}, nil
}

// baseName normalizes a process selector to its executable base name
// without extension.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// childHandle wraps a process this launcher started.
type childHandle struct {
	cmd  *exec.Cmd
	done chan struct{}
}

// PID returns the operating system process id.
func (h *childHandle) PID() int {
	return h.cmd.Process.Pid
}

// Running reports whether the process has not yet exited.
func (h *childHandle) Running() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

// Terminate kills the process and waits for it to be reaped. Terminating an
// already-exited process is not an error.
func (h *childHandle) Terminate() error {
	if !h.Running() {
		return nil
	}
	if err := h.cmd.Process.Kill(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to kill process"), "pid", h.PID())
	}
	<-h.done
	return nil
}

// pidHandle wraps a process found through the platform process table.
type pidHandle struct {
	pid int
}

func (h *pidHandle) PID() int {
	return h.pid
}

func (h *pidHandle) Running() bool {
	return processAlive(h.pid)
}

func (h *pidHandle) Terminate() error {
	if !processAlive(h.pid) {
		return nil
	}
	if err := killPID(h.pid); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to kill process"), "pid", h.pid)
	}
	return nil
}

// logWriter streams process output to the logger, one line per record.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Warn(line)
		}
	}
	return len(p), nil
}
