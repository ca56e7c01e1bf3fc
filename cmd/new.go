package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rigcpp/rig/internal/actions"
	"github.com/rigcpp/rig/internal/config"
)

var newOpts actions.NewOptions

// newCmd creates a project skeleton in ./<name>.
var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Creates a new C++ project with CMake and vcpkg",
	Example: `  rig new demo
  rig new demo --deps fmt,spdlog --std 20
  rig new demo --vcpkg-root ~/src/vcpkg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := newOpts
		opts.Name = args[0]

		// Settings fill in anything not given explicitly on the command line.
		if !cmd.Flags().Changed("vcpkg-root") {
			opts.VcpkgRoot = settings.VcpkgRoot
		}
		if !cmd.Flags().Changed("deps") {
			opts.Deps = settings.New.Deps
		}
		if !cmd.Flags().Changed("std") {
			opts.Std = settings.New.Std
		}

		return actions.New(cmd.Context(), newEnv(cmd), opts)
	},
}

func init() {
	newCmd.Flags().StringVar(&newOpts.VcpkgRoot, "vcpkg-root", "", "Path to the VCPKG_ROOT directory (overrides the environment variable)")
	newCmd.Flags().StringSliceVar(&newOpts.Deps, "deps", config.DefaultDeps, "Comma-separated vcpkg ports to add")
	newCmd.Flags().StringVar(&newOpts.Std, "std", config.DefaultStd, "C++ language standard")
}
