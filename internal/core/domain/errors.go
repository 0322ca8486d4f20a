package domain

import "go.trai.ch/zerr"

var (
	// ErrAllStrategiesExhausted is returned by the pipeline when every
	// strategy ran and none was confirmed by the verification probe.
	ErrAllStrategiesExhausted = zerr.New("all strategies exhausted")

	// ErrPathNotFound is returned when a required input or expected output
	// is missing from the filesystem.
	ErrPathNotFound = zerr.New("path not found")

	// ErrTimeoutExceeded is returned when an external operation did not
	// complete within its budget.
	ErrTimeoutExceeded = zerr.New("timeout exceeded")

	// ErrVerificationFailed is returned when the observable state never
	// matched expectations after all retries.
	ErrVerificationFailed = zerr.New("verification failed")

	// ErrExternalProcess is returned when a spawned tool exits non-zero or
	// cannot be started.
	ErrExternalProcess = zerr.New("external process error")

	// ErrInstallerNotFound is returned when no installer executable exists
	// at the resolved path before any strategy can run.
	ErrInstallerNotFound = zerr.New("installer not found")

	// ErrOperationFailed signals a failed entry point to the CLI boundary.
	// The structured result carries the detail; this sentinel only drives
	// the exit code.
	ErrOperationFailed = zerr.New("operation failed")
)
