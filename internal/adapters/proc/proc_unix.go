//go:build !windows

package proc

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"go.trai.ch/zerr"
)

// detachedSysProcAttr detaches the child into its own session so it
// survives the spawning call.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}

// processAlive reports whether a process with the given pid exists.
func processAlive(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}

// killPID force-kills the process with the given pid.
func killPID(pid int) error {
	return syscall.Kill(pid, syscall.SIGKILL)
}

// findPID scans the process table for an executable with the given base
// name. Returns 0 when nothing matches.
func findPID(name string) (int, error) {
	out, err := exec.Command("pgrep", "-x", name).Output()
	if err != nil {
		// pgrep exits 1 when no process matches.
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return 0, nil
		}
		return 0, zerr.Wrap(err, "pgrep failed")
	}

	line, _, _ := strings.Cut(string(bytes.TrimSpace(out)), "\n")
	pid, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, zerr.Wrap(err, "unexpected pgrep output")
	}
	return pid, nil
}
