package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/afero"
)

var ErrAlreadyRunning = errors.New("process already running")

func CreatePidFile(fs afero.Fs, path string) error {
	if exists, _ := afero.Exists(fs, path); exists {
		pidBytes, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("pidfile: could not read pid file: %w", err)
		}

		pid, err := strconv.Atoi(strings.TrimSpace(string(pidBytes)))
		if err != nil {
			return fmt.Errorf("pidfile: could not parse pid: %w", err)
		}

		if isAlive(pid) {
			return fmt.Errorf("pidfile: %w with pid %d", ErrAlreadyRunning, pid)
		}
	}

	pid := os.Getpid()
	if err := afero.WriteFile(fs, path, []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return fmt.Errorf("pidfile: could not write pid file: %w", err)
	}

	return nil
}

func RemovePidFile(fs afero.Fs, path string) error {
	if err := fs.Remove(path); err != nil {
		return fmt.Errorf("pidfile: could not remove pid file: %w", err)
	}
	return nil
}

func isAlive(pid int) bool {
	// On Unix FindProcess always succeeds, signal 0 probes for existence.
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}
