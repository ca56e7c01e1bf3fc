package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"

	"github.com/rigcpp/rig/internal/logger"
)

const (
	// FileName is the user-level settings file under <user config dir>/rig.
	FileName = "config.yaml"

	// LocalFileName is a per-directory settings file layered over the user one.
	LocalFileName = "rig.yaml"
)

// DefaultPath returns the user-level settings path, or "" when the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rig", FileName)
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		New: NewSettings{
			Std:  DefaultStd,
			Deps: append([]string(nil), DefaultDeps...),
		},
		Build: BuildSettings{
			Preset: DefaultPreset,
			CMake:  DefaultCMake,
		},
	}
}

// LoadConfig builds the effective settings.
//
// When explicit is non-empty only that file is read and it must exist.
// Otherwise the user-level file (DefaultPath) and then rig.yaml in dir are
// layered over the defaults; either may be absent. Keys missing from a file
// keep the value from the layer below.
func LoadConfig(explicit, dir string) (Settings, error) {
	st := Defaults()

	if explicit != "" {
		if err := overlay(&st, explicit, true); err != nil {
			return Settings{}, err
		}
		return st.withDefaults(), nil
	}

	for _, path := range []string{DefaultPath(), filepath.Join(dir, LocalFileName)} {
		if path == "" {
			continue
		}
		if err := overlay(&st, path, false); err != nil {
			return Settings{}, err
		}
	}
	return st.withDefaults(), nil
}

// overlay decodes the YAML file at path on top of st. A missing file is
// skipped unless required is set.
func overlay(st *Settings, path string, required bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			logger.Debug("[DEBUG] No settings file at %s\n", path)
			return nil
		}
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, st); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	logger.Debug("[DEBUG] Loaded settings from %s\n", path)
	return nil
}

// withDefaults refills values a settings file blanked out explicitly.
func (s Settings) withDefaults() Settings {
	if s.New.Std == "" {
		s.New.Std = DefaultStd
	}
	if s.Build.Preset == "" {
		s.Build.Preset = DefaultPreset
	}
	if s.Build.CMake == "" {
		s.Build.CMake = DefaultCMake
	}
	return s
}

// ConfigureArgv splits Build.ConfigureArgs using shell quoting rules.
func (s Settings) ConfigureArgv() ([]string, error) {
	return splitArgs("configure_args", s.Build.ConfigureArgs)
}

// BuildArgv splits Build.BuildArgs using shell quoting rules.
func (s Settings) BuildArgv() ([]string, error) {
	return splitArgs("build_args", s.Build.BuildArgs)
}

func splitArgs(key, raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	args, err := shlex.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid build.%s %q: %w", key, raw, err)
	}
	return args, nil
}
