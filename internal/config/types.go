package config

import (
	"github.com/rigcpp/rig/internal/vcpkg"
)

// Defaults applied when neither the settings file nor a flag provides a value.
const (
	DefaultPreset = "dev"
	DefaultStd    = "17"
	DefaultCMake  = "cmake"

	// MainFile is the entry-point source written into every new project.
	MainFile = "main.cc"
)

// DefaultDeps is the dependency list used by `rig new` when none is given.
var DefaultDeps = []string{"fmt"}

// Settings is the top-level structure of the rig settings file.
// - VcpkgRoot: vcpkg installation used when --vcpkg-root is absent (before VCPKG_ROOT).
// - New: defaults for project creation.
// - Build: how CMake is invoked.
type Settings struct {
	VcpkgRoot string        `yaml:"vcpkg_root"`
	New       NewSettings   `yaml:"new"`
	Build     BuildSettings `yaml:"build"`
}

// NewSettings holds defaults for `rig new`.
type NewSettings struct {
	Std  string   `yaml:"std"`
	Deps []string `yaml:"deps"`
}

// BuildSettings controls the CMake invocations made by build and run.
// ConfigureArgs and BuildArgs are shell-quoted strings appended to the
// configure and build steps respectively.
type BuildSettings struct {
	Preset        string `yaml:"preset"`
	CMake         string `yaml:"cmake"`
	ConfigureArgs string `yaml:"configure_args"`
	BuildArgs     string `yaml:"build_args"`
}

// Project is the in-memory description of a project being created. It is
// built once per `rig new` and not modified afterwards.
type Project struct {
	Name         string
	Path         string // absolute directory the project is created in
	Toolchain    vcpkg.Paths
	Dependencies []string
	Std          string
	MainFile     string
}
