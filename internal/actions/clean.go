package actions

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rigcpp/rig/internal/locate"
	"github.com/rigcpp/rig/internal/logger"
	"github.com/rigcpp/rig/internal/scaffold"
)

// CleanOptions are the inputs of `rig clean`. Exactly one of Preset and All
// should be set; All wins if both are.
type CleanOptions struct {
	Preset string
	All    bool
}

// Clean removes build output of the project containing the current
// directory: the whole build directory with All, or build/<preset>.
func Clean(env *Env, opts CleanOptions) error {
	root, err := locate.FindRootFrom(env.Getwd, scaffold.CMakeListsFile)
	if err != nil {
		return fmt.Errorf("failed to find project root (%s). Are you in a CMake project?: %w", scaffold.CMakeListsFile, err)
	}

	if !opts.All && opts.Preset == "" {
		return fmt.Errorf("%w, e.g. `rig clean --preset dev` or `rig clean --all`", ErrCleanScope)
	}

	base := filepath.Join(root, BuildDirName)
	if info, err := os.Stat(base); err != nil || !info.IsDir() {
		logger.Info("[INFO] Build directory '%s' does not exist or is not a directory. Nothing to clean.\n", base)
		return nil
	}

	if opts.All {
		logger.Info("[INFO] Cleaning all build artifacts in '%s'...\n", base)
		if err := os.RemoveAll(base); err != nil {
			return fmt.Errorf("failed to remove directory %s: %w", base, err)
		}
		logger.Info("[INFO] Successfully cleaned all build artifacts.\n")
		return nil
	}

	dir, err := presetDir(root, opts.Preset)
	if err != nil {
		return err
	}
	if !exists(dir) {
		logger.Info("[INFO] Build directory for preset '%s' ('%s') does not exist. Nothing to clean.\n", opts.Preset, dir)
		return nil
	}

	logger.Info("[INFO] Cleaning build artifacts for preset '%s' in '%s'...\n", opts.Preset, dir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove directory %s: %w", dir, err)
	}
	logger.Info("[INFO] Successfully cleaned build artifacts for preset '%s'.\n", opts.Preset)
	return nil
}
