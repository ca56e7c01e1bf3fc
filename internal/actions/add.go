package actions

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rigcpp/rig/internal/locate"
	"github.com/rigcpp/rig/internal/logger"
	"github.com/rigcpp/rig/internal/vcpkg"
)

// AddOptions are the inputs of `rig add`.
type AddOptions struct {
	Deps      []string
	VcpkgRoot string
}

// Add registers dependencies in the manifest of the project containing the
// current directory, using one `vcpkg add port` call for all of them.
func Add(ctx context.Context, env *Env, opts AddOptions) error {
	var deps []string
	for _, d := range opts.Deps {
		if d = strings.TrimSpace(d); d != "" {
			deps = append(deps, d)
		}
	}
	if len(deps) == 0 {
		return ErrNoDependencies
	}

	logger.Info("[INFO] Attempting to add dependencies: %v\n", deps)

	root, err := locate.FindRootFrom(env.Getwd, vcpkg.ManifestFile)
	if err != nil {
		return fmt.Errorf("failed to find project root. Are you in a rig-managed project (look for %s)?: %w", vcpkg.ManifestFile, err)
	}
	logger.Info("[INFO] Operating in project root: %s\n", root)

	toolchain, err := vcpkg.Locate(opts.VcpkgRoot, env.LookupEnv, env.GOOS)
	if err != nil {
		return fmt.Errorf("failed to locate vcpkg: %w", err)
	}

	manifest := filepath.Join(root, vcpkg.ManifestFile)
	if !isFile(manifest) {
		return fmt.Errorf("%w in project root (%s). Initialize a project first with `rig new` or `vcpkg new --application`",
			ErrManifestMissing, root)
	}

	if err := toolchain.AddPorts(ctx, env.Exec, root, deps...); err != nil {
		return err
	}

	logger.Info("[INFO] Successfully added dependencies: %v. Update your CMakeLists.txt if necessary.\n", deps)
	fmt.Fprintln(env.Out, "You might need to add 'find_package(<dependency> CONFIG REQUIRED)' and link against '<dependency>::<dependency>'.")
	return nil
}
