package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rigcpp/rig/internal/config"
	"github.com/rigcpp/rig/internal/logger"
	"github.com/rigcpp/rig/internal/scaffold"
	"github.com/rigcpp/rig/internal/vcpkg"
)

// NewOptions are the inputs of `rig new`.
type NewOptions struct {
	Name      string
	VcpkgRoot string // overrides VCPKG_ROOT when set
	Deps      []string
	Std       string
}

// New creates a project directory named after the project inside the
// current directory, initialises its vcpkg manifest, registers the
// dependencies and writes the generated files.
//
// Nothing is rolled back on failure: a partially populated directory may be
// left behind.
func New(ctx context.Context, env *Env, opts NewOptions) error {
	wd, err := env.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	toolchain, err := vcpkg.Locate(opts.VcpkgRoot, env.LookupEnv, env.GOOS)
	if err != nil {
		return err
	}

	p, err := config.NewProject(opts.Name, wd, toolchain, opts.Deps, opts.Std)
	if err != nil {
		return err
	}

	logger.Info("[INFO] Creating new C++ project: %s\n", p.Name)
	logger.Info("[INFO] Using VCPKG_ROOT: %s\n", p.Toolchain.Root)

	if err := prepareProjectDir(env, p); err != nil {
		return err
	}

	if err := p.Toolchain.InitManifest(ctx, env.Exec, p.Path); err != nil {
		return err
	}
	ports := p.Ports()
	if len(ports) > 0 {
		logger.Info("[INFO] Adding dependencies: %v\n", ports)
	}
	for _, port := range ports {
		if err := p.Toolchain.AddPorts(ctx, env.Exec, p.Path, port); err != nil {
			return err
		}
	}

	files, err := scaffold.Files(p, env.GOOS)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(p.Path, f.Name), f.Content); err != nil {
			return err
		}
	}

	printNextSteps(env, p)
	return nil
}

// prepareProjectDir creates p.Path. An existing directory is replaced only
// after the user confirms; otherwise it is left untouched and ErrAborted is
// returned.
func prepareProjectDir(env *Env, p *config.Project) error {
	if exists(p.Path) {
		msg := fmt.Sprintf("Directory '%s' already exists. Overwrite?", p.Name)
		if !confirm(env.In, env.Out, msg) {
			logger.Warn("[WARN] Aborted.\n")
			return fmt.Errorf("project creation %w", ErrAborted)
		}
		if err := os.RemoveAll(p.Path); err != nil {
			return fmt.Errorf("failed to remove existing directory %s: %w", p.Path, err)
		}
	}

	if err := os.MkdirAll(p.Path, 0755); err != nil {
		return fmt.Errorf("failed to create project directory %s: %w", p.Path, err)
	}
	logger.Info("[INFO] Created directory: %s\n", p.Path)
	return nil
}

func writeFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	logger.Info("[INFO] Created file: %s\n", path)
	return nil
}

func printNextSteps(env *Env, p *config.Project) {
	exe := filepath.Join(".", BuildDirName, config.DefaultPreset, p.Name)
	if env.GOOS == "windows" {
		exe += ".exe"
	}

	fmt.Fprintf(env.Out, "\nProject '%s' created successfully!\n", p.Name)
	fmt.Fprintf(env.Out, "  Path: %s\n", p.Path)
	fmt.Fprintln(env.Out, "\nNext steps:")
	fmt.Fprintf(env.Out, "1. `cd %s`\n", p.Name)
	fmt.Fprintln(env.Out, "2. Build: `rig build` (or `cmake --preset dev` then `cmake --build --preset dev`)")
	fmt.Fprintf(env.Out, "3. Run: `rig run` (or `%s`)\n", exe)
	fmt.Fprintln(env.Out, "\nTo build for release:")
	fmt.Fprintln(env.Out, "  `rig build --preset release`")
}
