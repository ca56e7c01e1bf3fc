package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rigcpp/rig/internal/actions"
	"github.com/rigcpp/rig/internal/config"
	"github.com/rigcpp/rig/internal/logger"
)

// Global flags shared by every subcommand.
var (
	debug      bool
	noColor    bool
	configPath string
)

// settings holds the effective rig settings, loaded before any subcommand runs.
var settings = config.Defaults()

// exitCode is what the process exits with when no error is reported. `run`
// sets it to the exit code of the executed program.
var exitCode int

// rootCmd is the base command for the CLI tool `rig`.
var rootCmd = &cobra.Command{
	Use:   "rig",
	Short: "A CLI tool to create, build and run C++/CMake/vcpkg projects",
	Long: `rig scaffolds C++ projects that use CMake presets and a vcpkg manifest,
and wraps the everyday CMake and vcpkg invocations: configure and build,
run the produced executable, add dependencies and clean build output.`,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRunE initialises logging and loads the settings files
	// before any subcommand.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(debug, noColor)

		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		st, err := config.LoadConfig(configPath, wd)
		if err != nil {
			return err
		}
		settings = st
		return nil
	},
}

// Execute runs the CLI and returns the process exit code: 0 on success, the
// executed program's code for `run`, and 1 for any reported error.
func Execute() int {
	exitCode = 0
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		return 1
	}
	return exitCode
}

// newEnv binds an action environment to the command's streams.
func newEnv(cmd *cobra.Command) *actions.Env {
	env := actions.NewEnv(settings)
	env.In = cmd.InOrStdin()
	env.Out = cmd.OutOrStdout()
	return env
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a settings file (default: <user config dir>/rig/config.yaml, then ./rig.yaml)")

	rootCmd.AddCommand(newCmd, buildCmd, runCmd, addCmd, cleanCmd)
}
