// Package ports defines the core interfaces for the application.
package ports

import "context"

// ProcessHandle is a handle to a spawned external process, sufficient to
// query and terminate it after the spawning call returns.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type ProcessHandle interface {
	// PID returns the operating system process id.
	PID() int
	// Running reports whether the process has not yet exited.
	Running() bool
	// Terminate kills the process. It is idempotent and best-effort;
	// terminating an already-exited process is not an error.
	Terminate() error
}

// Launcher starts external programs.
type Launcher interface {
	// Run executes the program and waits for it to exit. A non-zero exit
	// status is returned as an error.
	Run(ctx context.Context, path string, args ...string) error

	// Spawn starts the program detached from the calling process and
	// returns immediately with a handle. The process may outlive the call;
	// callers own its termination.
	Spawn(ctx context.Context, path string, args ...string) (ProcessHandle, error)

	// FindProcess looks up a running process by executable name. It returns
	// nil and no error when no matching process exists.
	FindProcess(name string) (ProcessHandle, error)
}
