// Package appdirs resolves the per-user directories twigpanes keeps its
// layout snapshots and logs in.
package appdirs

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "twigpanes"

// EnvStateDir overrides the state directory when set. Used by tests and
// scripted runs.
const EnvStateDir = "TWIGPANES_STATE_DIR"

// StateDir returns the directory for persisted layout snapshots.
func StateDir() (string, error) {
	if override := os.Getenv(EnvStateDir); override != "" {
		return ensureDir(override)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("appdirs: resolve config dir: %w", err)
	}
	return ensureDir(filepath.Join(base, appName))
}

// LogDir returns the directory for rotated log files.
func LogDir() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(dir, "logs"))
}

func ensureDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("appdirs: directory is empty")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("appdirs: create %s: %w", dir, err)
	}
	return dir, nil
}
