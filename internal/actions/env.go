// Package actions implements rig's user-facing operations: new, build, run,
// add and clean. Each action is a short linear pipeline over the root
// locator, the vcpkg locator and the command executor.
package actions

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rigcpp/rig/internal/config"
	"github.com/rigcpp/rig/internal/runner"
)

// BuildDirName is the directory, relative to the project root, holding one
// subdirectory per preset.
const BuildDirName = "build"

var (
	ErrAborted            = errors.New("aborted by user")
	ErrNoDependencies     = errors.New("no dependencies specified to add")
	ErrManifestMissing    = errors.New("vcpkg manifest not found")
	ErrCleanScope         = errors.New("no clean scope given: use --preset <name> or --all")
	ErrExecutableNotFound = errors.New("executable not found")
	ErrInvalidPreset      = errors.New("invalid preset name")
)

// Env carries everything an action needs from the outside world, so tests
// can substitute the working directory, environment and process execution.
type Env struct {
	Exec      runner.Executor
	Getwd     func() (string, error)
	LookupEnv func(string) (string, bool)
	In        io.Reader // answers to confirmation prompts
	Out       io.Writer // prompts and follow-up instructions
	GOOS      string
	Settings  config.Settings
}

// NewEnv returns an Env bound to the current process.
func NewEnv(st config.Settings) *Env {
	return &Env{
		Exec:      runner.NewOSExecutor(),
		Getwd:     os.Getwd,
		LookupEnv: os.LookupEnv,
		In:        os.Stdin,
		Out:       os.Stdout,
		GOOS:      runtime.GOOS,
		Settings:  st,
	}
}

func (e *Env) cmake() string {
	if e.Settings.Build.CMake == "" {
		return config.DefaultCMake
	}
	return e.Settings.Build.CMake
}

// presetDir validates preset and returns build/<preset> under root.
func presetDir(root, preset string) (string, error) {
	if preset == "" || preset == "." || preset == ".." || strings.ContainsAny(preset, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPreset, preset)
	}
	return filepath.Join(root, BuildDirName, preset), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
