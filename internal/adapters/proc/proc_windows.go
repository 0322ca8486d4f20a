//go:build windows

package proc

import (
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"go.trai.ch/zerr"
)

const detachedProcess = 0x00000008

// detachedSysProcAttr detaches the child from the console of the spawning
// process so it survives the spawning call.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP | detachedProcess,
	}
}

// processAlive reports whether a process with the given pid exists.
func processAlive(pid int) bool {
	pid32 := uint32(pid) //nolint:gosec // pids fit in 32 bits on windows
	h, err := syscall.OpenProcess(syscall.PROCESS_QUERY_INFORMATION, false, pid32)
	if err != nil {
		return false
	}
	defer syscall.CloseHandle(h) //nolint:errcheck // best effort close in defer

	var code uint32
	if err := syscall.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	// STILL_ACTIVE
	return code == 259
}

// killPID force-kills the process with the given pid.
func killPID(pid int) error {
	return exec.Command("taskkill", "/f", "/pid", strconv.Itoa(pid)).Run()
}

// findPID scans the process table for an executable with the given base
// name. Returns 0 when nothing matches.
func findPID(name string) (int, error) {
	out, err := exec.Command("tasklist", "/FI", "IMAGENAME eq "+name+".exe", "/FO", "CSV", "/NH").Output()
	if err != nil {
		return 0, zerr.Wrap(err, "tasklist failed")
	}

	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Split(strings.TrimSpace(line), "\",\"")
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(strings.Trim(fields[1], "\""))
		if err != nil {
			continue
		}
		return pid, nil
	}
	return 0, nil
}
