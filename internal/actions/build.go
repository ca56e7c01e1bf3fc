package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rigcpp/rig/internal/locate"
	"github.com/rigcpp/rig/internal/logger"
	"github.com/rigcpp/rig/internal/runner"
	"github.com/rigcpp/rig/internal/scaffold"
)

// CacheFile marks a build directory CMake has already configured.
const CacheFile = "CMakeCache.txt"

// BuildOptions are the inputs of `rig build`.
type BuildOptions struct {
	Preset string
	Clean  bool // remove build/<preset> and reconfigure
}

// Build configures (when needed) and builds the project containing the
// current directory with the given CMake preset.
func Build(ctx context.Context, env *Env, opts BuildOptions) error {
	root, err := locate.FindRootFrom(env.Getwd, scaffold.CMakeListsFile)
	if err != nil {
		return fmt.Errorf("failed to find project root (%s). Are you in a CMake project?: %w", scaffold.CMakeListsFile, err)
	}
	buildDir, err := presetDir(root, opts.Preset)
	if err != nil {
		return err
	}

	configureArgs, err := env.Settings.ConfigureArgv()
	if err != nil {
		return err
	}
	buildArgs, err := env.Settings.BuildArgv()
	if err != nil {
		return err
	}

	logger.Info("[INFO] Building project at '%s' using preset '%s'...\n", root, opts.Preset)

	if opts.Clean && exists(buildDir) {
		logger.Info("[INFO] Cleaning build directory: %s\n", buildDir)
		if err := os.RemoveAll(buildDir); err != nil {
			return fmt.Errorf("failed to clean build directory %s: %w", buildDir, err)
		}
	}

	if opts.Clean || !exists(filepath.Join(buildDir, CacheFile)) {
		logger.Info("[INFO] Configuring CMake with preset '%s'...\n", opts.Preset)
		cmd := runner.Command{
			Path: env.cmake(),
			Args: append([]string{"--preset", opts.Preset}, configureArgs...),
			Dir:  root,
		}
		if err := runner.Run(ctx, env.Exec, cmd); err != nil {
			return fmt.Errorf("CMake configuration failed for preset '%s': %w", opts.Preset, err)
		}
		logger.Info("[INFO] CMake configuration successful.\n")
	} else {
		logger.Info("[INFO] CMake already configured for preset '%s'. Skipping configuration.\n", opts.Preset)
	}

	logger.Info("[INFO] Building with CMake using preset '%s'...\n", opts.Preset)
	cmd := runner.Command{
		Path: env.cmake(),
		Args: append([]string{"--build", buildDir}, buildArgs...),
		Dir:  root,
	}
	if err := runner.Run(ctx, env.Exec, cmd); err != nil {
		return fmt.Errorf("CMake build failed for preset '%s': %w", opts.Preset, err)
	}

	logger.Info("[INFO] Build successful for preset '%s'.\n", opts.Preset)
	return nil
}
