package main

import (
	"os"

	"github.com/rigcpp/rig/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() and exits with the code it returns.
//
// rig is a scaffolding and task-runner tool for C++ projects built with CMake
// presets and vcpkg manifests. It:
//   - Creates new projects: a vcpkg manifest plus CMakeLists.txt, CMakePresets.json,
//     CMakeUserPresets.json, .gitignore and main.cc generated from templates
//   - Configures and builds a preset by shelling out to cmake
//   - Runs the built executable, forwarding its exit code as rig's own
//   - Adds dependencies through `vcpkg add port`
//   - Cleans per-preset build directories
//
// Error handling strategy:
//   - Every failure is terminal for the invocation; nothing is retried
//   - Errors are wrapped with what was being attempted and printed once, in red,
//     by cmd.Execute, which then returns exit code 1
func main() {
	os.Exit(cmd.Execute())
}
