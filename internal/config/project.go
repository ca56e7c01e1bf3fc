package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rigcpp/rig/internal/vcpkg"
)

// ErrInvalidName is returned for project names that cannot be used as both a
// directory name and a CMake target.
var ErrInvalidName = errors.New("invalid project name")

// NewProject assembles the configuration for a project called name, created
// inside parentDir. The dependency list is copied; duplicates are kept and
// empty entries are filtered when the list is used (see Ports).
func NewProject(name, parentDir string, toolchain vcpkg.Paths, deps []string, std string) (*Project, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	case name == "." || name == "..":
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return nil, fmt.Errorf("%w: %q must not contain path separators", ErrInvalidName, name)
	}
	if std == "" {
		std = DefaultStd
	}

	return &Project{
		Name:         name,
		Path:         filepath.Join(parentDir, name),
		Toolchain:    toolchain,
		Dependencies: append([]string(nil), deps...),
		Std:          std,
		MainFile:     MainFile,
	}, nil
}

// Ports returns the dependencies with empty and blank entries removed, in
// their original order.
func (p *Project) Ports() []string {
	var ports []string
	for _, d := range p.Dependencies {
		d = strings.TrimSpace(d)
		if d != "" {
			ports = append(ports, d)
		}
	}
	return ports
}
