package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// LogDirName is the directory below the base dir holding the log.
	LogDirName = "logs"
	// LogFileName is the snapshot log file name.
	LogFileName = "docker_monitor.log"
)

// BaseDir returns the parent of the directory containing the running
// executable, with symlinks resolved.
func BaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// ResolveLogPath returns <base>/logs/docker_monitor.log, creating the
// logs directory if it does not exist yet.
func ResolveLogPath(base string) (string, error) {
	logsDir := filepath.Join(base, LogDirName)
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return "", &PersistenceError{Path: logsDir, Err: err}
	}
	return filepath.Join(logsDir, LogFileName), nil
}
