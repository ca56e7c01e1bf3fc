package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rigcpp/rig/internal/actions"
	"github.com/rigcpp/rig/internal/config"
)

var buildOpts actions.BuildOptions

// buildCmd configures and builds the current project.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the project using a CMake preset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := buildOpts
		if !cmd.Flags().Changed("preset") {
			opts.Preset = settings.Build.Preset
		}
		return actions.Build(cmd.Context(), newEnv(cmd), opts)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOpts.Preset, "preset", "p", config.DefaultPreset, "CMake preset to build")
	buildCmd.Flags().BoolVar(&buildOpts.Clean, "clean", false, "Remove the preset's build directory and reconfigure")
}
