// Package filex holds small filesystem helpers for locating and preparing
// the client's local state directory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// UserConfigDir returns the per-user directory for app's local state.
// XDG_CONFIG_HOME wins when set; otherwise os.UserConfigDir is used, and the
// current directory is the last resort.
func UserConfigDir(app string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, app)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, app)
	}
	return app
}

// EnsureParentDir creates the directory that will hold path (mode 0700) and
// returns the cleaned path.
func EnsureParentDir(path string) (string, error) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return path, nil
}
