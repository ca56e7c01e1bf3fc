package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rigcpp/rig/internal/locate"
	"github.com/rigcpp/rig/internal/logger"
	"github.com/rigcpp/rig/internal/runner"
	"github.com/rigcpp/rig/internal/scaffold"
	"github.com/rigcpp/rig/internal/vcpkg"
)

// RunOptions are the inputs of `rig run`.
type RunOptions struct {
	Preset string
	Target string // executable name; defaults to the manifest name, then the directory name
	Clean  bool
	Args   []string // passed through to the executable
}

// Run builds the project and then executes its binary with inherited
// streams. The returned Status carries the child's exit code so the caller
// can forward it; a non-zero code is not an error. Abnormal termination is
// returned as a *runner.AbnormalExitError.
func Run(ctx context.Context, env *Env, opts RunOptions) (runner.Status, error) {
	logger.Info("[INFO] Ensuring project is built before running...\n")
	if err := Build(ctx, env, BuildOptions{Preset: opts.Preset, Clean: opts.Clean}); err != nil {
		return runner.Status{}, err
	}
	logger.Info("[INFO] Build check complete.\n")

	root, err := locate.FindRootFrom(env.Getwd, vcpkg.ManifestFile)
	if err != nil {
		return runner.Status{}, fmt.Errorf("failed to find project root. Are you in a project directory?: %w", err)
	}

	target, err := targetName(root, opts.Target)
	if err != nil {
		return runner.Status{}, err
	}

	buildDir, err := presetDir(root, opts.Preset)
	if err != nil {
		return runner.Status{}, err
	}
	exe := filepath.Join(buildDir, target)
	if env.GOOS == "windows" {
		exe += ".exe"
	}

	logger.Info("[INFO] Attempting to run target '%s' from project at '%s' using preset '%s'...\n", target, root, opts.Preset)
	if !isFile(exe) {
		return runner.Status{}, fmt.Errorf("%w at '%s'. Check target name and %s", ErrExecutableNotFound, exe, scaffold.CMakeListsFile)
	}

	cmd := runner.Command{Path: exe, Args: opts.Args, Dir: root}
	logger.Info("[INFO] Executing: %s %s\n", exe, strings.Join(opts.Args, " "))
	status, err := env.Exec.Execute(ctx, cmd)
	if err != nil {
		return runner.Status{}, err
	}
	if !status.Exited {
		return status, runner.Check(cmd, status)
	}
	if status.Code != 0 {
		logger.Warn("[WARN] Command exited with status: %d\n", status.Code)
	}
	return status, nil
}

// targetName picks the executable name: the explicit override, else the
// "name" field of vcpkg.json, else the project directory's name.
func targetName(root, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	manifest := filepath.Join(root, vcpkg.ManifestFile)
	if exists(manifest) {
		content, err := os.ReadFile(manifest)
		if err != nil {
			return "", fmt.Errorf("failed to read %s at %s: %w", vcpkg.ManifestFile, manifest, err)
		}
		if name := vcpkg.ManifestName(string(content)); name != "" {
			return name, nil
		}
	}

	name := filepath.Base(root)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("failed to determine project name from project directory %s", root)
	}
	return name, nil
}
