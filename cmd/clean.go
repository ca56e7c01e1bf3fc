package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rigcpp/rig/internal/actions"
)

var cleanOpts actions.CleanOptions

// cleanCmd removes build output for one preset or for all of them.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Cleans build artifacts for a preset or for all presets",
	Example: `  rig clean --preset dev
  rig clean --all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return actions.Clean(newEnv(cmd), cleanOpts)
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanOpts.Preset, "preset", "p", "", "CMake preset whose build directory to clean")
	cleanCmd.Flags().BoolVar(&cleanOpts.All, "all", false, "Clean all build directories for all presets")
	cleanCmd.MarkFlagsMutuallyExclusive("preset", "all")
}
