package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rigcpp/rig/internal/actions"
	"github.com/rigcpp/rig/internal/config"
)

var runOpts actions.RunOptions

// runCmd builds the project and runs its executable. The executable's exit
// code becomes rig's own exit code.
var runCmd = &cobra.Command{
	Use:   "run [-- args...]",
	Short: "Runs the project's executable (builds first if necessary)",
	Example: `  rig run
  rig run --preset release -- --input data.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOpts
		opts.Args = args
		if !cmd.Flags().Changed("preset") {
			opts.Preset = settings.Build.Preset
		}

		status, err := actions.Run(cmd.Context(), newEnv(cmd), opts)
		if err != nil {
			return err
		}
		exitCode = status.Code
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runOpts.Preset, "preset", "p", config.DefaultPreset, "CMake preset to build and run")
	runCmd.Flags().StringVarP(&runOpts.Target, "target", "t", "", "Executable to run (default: name from vcpkg.json, else the directory name)")
	runCmd.Flags().BoolVar(&runOpts.Clean, "clean", false, "Clean the preset's build directory before building")
}
