// Package scaffold renders the files of a new C++ project. Every function is
// pure: the same project configuration always yields byte-identical output
// and nothing touches the filesystem.
package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/rigcpp/rig/internal/config"
)

// Names of the generated files, relative to the project directory.
const (
	CMakeListsFile  = "CMakeLists.txt"
	PresetsFile     = "CMakePresets.json"
	UserPresetsFile = "CMakeUserPresets.json"
	GitIgnoreFile   = ".gitignore"
)

var templates = template.Must(template.New("scaffold").Funcs(template.FuncMap{
	"linkLine": linkLine,
	"json":     jsonString,
}).Parse(""))

func init() {
	for name, text := range map[string]string{
		CMakeListsFile:  CMakeListsTemplate,
		UserPresetsFile: UserPresetsTemplate,
		config.MainFile: MainSourceTemplate,
	} {
		template.Must(templates.New(name).Parse(text))
	}
}

// File is one generated file.
type File struct {
	Name    string
	Content []byte
}

// cmakeContext holds the data for CMakeLists.txt rendering
type cmakeContext struct {
	Name     string
	Std      string
	MainFile string
	Ports    []string
}

// userPresetsContext holds the data for CMakeUserPresets.json rendering
type userPresetsContext struct {
	VcpkgRoot   string
	Toolchain   string
	MakeProgram string
	CCompiler   string
	CXXCompiler string
}

// CMakeLists renders CMakeLists.txt. Every non-empty dependency X gets a
// find_package(X CONFIG REQUIRED) line and is linked as X::X. Without
// dependencies both blocks are replaced by comments.
func CMakeLists(p *config.Project) ([]byte, error) {
	return render(CMakeListsFile, cmakeContext{
		Name:     p.Name,
		Std:      p.Std,
		MainFile: p.MainFile,
		Ports:    p.Ports(),
	})
}

// Presets renders CMakePresets.json. The content does not depend on the
// project.
func Presets() []byte {
	return []byte(PresetsTemplate)
}

// UserPresets renders CMakeUserPresets.json for goos, embedding the resolved
// vcpkg root and toolchain and the platform's tool names.
func UserPresets(p *config.Project, goos string) ([]byte, error) {
	ctx := userPresetsContext{
		VcpkgRoot:   p.Toolchain.Root,
		Toolchain:   p.Toolchain.Toolchain,
		MakeProgram: "ninja",
		CCompiler:   "clang",
		CXXCompiler: "clang++",
	}
	if goos == "windows" {
		ctx.MakeProgram = "ninja.exe"
		ctx.CCompiler = "cl.exe"
		ctx.CXXCompiler = "cl.exe"
	}
	return render(UserPresetsFile, ctx)
}

// MainSource renders main.cc, which greets with the project name and echoes
// its arguments with 1-based indices.
func MainSource(projectName string) ([]byte, error) {
	return render(config.MainFile, struct{ Name string }{projectName})
}

// GitIgnore returns the .gitignore content.
func GitIgnore() []byte {
	return []byte(GitIgnoreTemplate)
}

// Files renders every file of a new project in the order they are written.
func Files(p *config.Project, goos string) ([]File, error) {
	cmakeLists, err := CMakeLists(p)
	if err != nil {
		return nil, err
	}
	mainSource, err := MainSource(p.Name)
	if err != nil {
		return nil, err
	}
	userPresets, err := UserPresets(p, goos)
	if err != nil {
		return nil, err
	}

	return []File{
		{Name: CMakeListsFile, Content: cmakeLists},
		{Name: p.MainFile, Content: mainSource},
		{Name: PresetsFile, Content: Presets()},
		{Name: UserPresetsFile, Content: userPresets},
		{Name: GitIgnoreFile, Content: GitIgnore()},
	}, nil
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// linkLine joins ports as CMake imported targets: "fmt spdlog" -> "fmt::fmt spdlog::spdlog".
func linkLine(ports []string) string {
	targets := make([]string, len(ports))
	for i, p := range ports {
		targets[i] = p + "::" + p
	}
	return strings.Join(targets, " ")
}

// jsonString quotes s as a JSON string literal; Windows paths get their
// backslashes escaped.
func jsonString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
