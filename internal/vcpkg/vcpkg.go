// Package vcpkg locates a vcpkg installation and drives its manifest commands.
package vcpkg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rigcpp/rig/internal/logger"
	"github.com/rigcpp/rig/internal/runner"
)

const (
	// EnvRoot names the environment variable holding the vcpkg root.
	EnvRoot = "VCPKG_ROOT"

	// ManifestFile is vcpkg's manifest; its presence marks a project root.
	ManifestFile = "vcpkg.json"

	// ToolchainRelPath is the CMake toolchain file relative to the root.
	ToolchainRelPath = "scripts/buildsystems/vcpkg.cmake"
)

var (
	ErrRootUnresolved    = errors.New("vcpkg root unresolved: --vcpkg-root was not provided, vcpkg_root is not set in the settings file and " + EnvRoot + " is not set")
	ErrExecutableMissing = errors.New("vcpkg executable not found")
	ErrToolchainMissing  = errors.New("vcpkg.cmake toolchain file not found")
)

// Paths is a validated vcpkg installation.
type Paths struct {
	Root       string
	Executable string
	Toolchain  string
}

// ExecutableName returns the vcpkg binary name for goos.
func ExecutableName(goos string) string {
	if goos == "windows" {
		return "vcpkg.exe"
	}
	return "vcpkg"
}

// Locate resolves the vcpkg root from override or, when override is empty,
// from EnvRoot via lookupEnv. A relative root is made absolute against the
// current directory. It fails unless both the executable and the toolchain
// file exist as regular files under the root.
func Locate(override string, lookupEnv func(string) (string, bool), goos string) (Paths, error) {
	root := override
	if root == "" {
		if v, ok := lookupEnv(EnvRoot); ok && v != "" {
			root = v
		}
	}
	if root == "" {
		return Paths{}, ErrRootUnresolved
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return Paths{}, fmt.Errorf("failed to resolve vcpkg root %s: %w", root, err)
	}
	root = abs

	p := Paths{
		Root:       root,
		Executable: filepath.Join(root, ExecutableName(goos)),
		Toolchain:  filepath.Join(root, filepath.FromSlash(ToolchainRelPath)),
	}
	logger.Debug("[DEBUG] Checking vcpkg installation at %s\n", root)

	if !isFile(p.Executable) {
		return Paths{}, fmt.Errorf("%w at: %s", ErrExecutableMissing, p.Executable)
	}
	if !isFile(p.Toolchain) {
		return Paths{}, fmt.Errorf("%w at: %s", ErrToolchainMissing, p.Toolchain)
	}
	return p, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// InitManifest runs `vcpkg new --application` in dir, creating vcpkg.json.
func (p Paths) InitManifest(ctx context.Context, ex runner.Executor, dir string) error {
	logger.Info("[INFO] Initializing vcpkg manifest (%s)...\n", ManifestFile)
	cmd := runner.Command{Path: p.Executable, Args: []string{"new", "--application"}, Dir: dir}
	if err := runner.Run(ctx, ex, cmd); err != nil {
		return fmt.Errorf("failed to initialize vcpkg manifest: %w", err)
	}
	return nil
}

// AddPorts registers ports in the manifest in dir with a single
// `vcpkg add port` invocation.
func (p Paths) AddPorts(ctx context.Context, ex runner.Executor, dir string, ports ...string) error {
	if len(ports) == 0 {
		return nil
	}
	args := append([]string{"add", "port"}, ports...)
	cmd := runner.Command{Path: p.Executable, Args: args, Dir: dir}
	if err := runner.Run(ctx, ex, cmd); err != nil {
		return fmt.Errorf("failed to add vcpkg dependencies %v: %w", ports, err)
	}
	return nil
}

// ManifestName extracts the project name from manifest content. It returns
// the value of the first line whose trimmed text starts with "name":, or ""
// if there is none. The content does not need to be valid JSON.
func ManifestName(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, `"name":`) {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(line, `"name":`))
		return strings.Trim(value, `",`)
	}
	return ""
}
