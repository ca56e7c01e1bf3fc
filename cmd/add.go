package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rigcpp/rig/internal/actions"
)

var addOpts actions.AddOptions

// addCmd adds vcpkg ports to the current project's manifest.
var addCmd = &cobra.Command{
	Use:   "add <dep>...",
	Short: "Adds one or more dependencies to the project using vcpkg",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := addOpts
		opts.Deps = args
		if !cmd.Flags().Changed("vcpkg-root") {
			opts.VcpkgRoot = settings.VcpkgRoot
		}
		return actions.Add(cmd.Context(), newEnv(cmd), opts)
	},
}

func init() {
	addCmd.Flags().StringVar(&addOpts.VcpkgRoot, "vcpkg-root", "", "Path to the VCPKG_ROOT directory (overrides the environment variable)")
}
