// Package locate finds a project root by walking up the directory tree until
// a marker file such as CMakeLists.txt or vcpkg.json is found.
package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned when no ancestor contains the marker.
var ErrRootNotFound = errors.New("project root not found")

// FindRoot returns the absolute path of the first directory, starting at
// start and moving up through its parents, that contains an entry named
// marker.
func FindRoot(start, marker string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("%w: resolving %s: %v", ErrRootNotFound, start, err)
	}

	dir := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrRootNotFound, marker, abs)
		}
		dir = parent
	}
}

// FindRootFrom is FindRoot starting at the directory reported by getwd,
// normally os.Getwd.
func FindRootFrom(getwd func() (string, error), marker string) (string, error) {
	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("%w: cannot determine current directory: %v", ErrRootNotFound, err)
	}
	return FindRoot(wd, marker)
}
