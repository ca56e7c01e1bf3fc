package vcpkg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigcpp/rig/internal/runner"
	"github.com/rigcpp/rig/internal/runner/runnertest"
)

func fakeRoot(t *testing.T, goos string, withExe, withToolchain bool) string {
	t.Helper()
	root := t.TempDir()
	if withExe {
		require.NoError(t, os.WriteFile(filepath.Join(root, ExecutableName(goos)), []byte("#!/bin/sh\n"), 0755))
	}
	if withToolchain {
		tc := filepath.Join(root, filepath.FromSlash(ToolchainRelPath))
		require.NoError(t, os.MkdirAll(filepath.Dir(tc), 0755))
		require.NoError(t, os.WriteFile(tc, []byte("# toolchain\n"), 0644))
	}
	return root
}

func noEnv(string) (string, bool) { return "", false }

func envWith(root string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if key == EnvRoot {
			return root, true
		}
		return "", false
	}
}

func TestExecutableName(t *testing.T) {
	assert.Equal(t, "vcpkg.exe", ExecutableName("windows"))
	assert.Equal(t, "vcpkg", ExecutableName("linux"))
	assert.Equal(t, "vcpkg", ExecutableName("darwin"))
}

func TestLocate(t *testing.T) {
	t.Run("override with both files", func(t *testing.T) {
		root := fakeRoot(t, "linux", true, true)
		got, err := Locate(root, noEnv, "linux")
		require.NoError(t, err)
		assert.Equal(t, Paths{
			Root:       root,
			Executable: filepath.Join(root, "vcpkg"),
			Toolchain:  filepath.Join(root, "scripts", "buildsystems", "vcpkg.cmake"),
		}, got)
	})

	t.Run("falls back to environment", func(t *testing.T) {
		root := fakeRoot(t, "linux", true, true)
		got, err := Locate("", envWith(root), "linux")
		require.NoError(t, err)
		assert.Equal(t, root, got.Root)
	})

	t.Run("override wins over environment", func(t *testing.T) {
		root := fakeRoot(t, "linux", true, true)
		got, err := Locate(root, envWith("/nonexistent/vcpkg"), "linux")
		require.NoError(t, err)
		assert.Equal(t, root, got.Root)
	})

	t.Run("relative root is made absolute", func(t *testing.T) {
		root := fakeRoot(t, "linux", true, true)
		testChdir(t, filepath.Dir(root))
		wd, err := os.Getwd()
		require.NoError(t, err)
		abs := filepath.Join(wd, filepath.Base(root))

		got, err := Locate(filepath.Base(root), noEnv, "linux")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got.Root))
		assert.Equal(t, Paths{
			Root:       abs,
			Executable: filepath.Join(abs, "vcpkg"),
			Toolchain:  filepath.Join(abs, "scripts", "buildsystems", "vcpkg.cmake"),
		}, got)
	})

	t.Run("relative environment root is made absolute", func(t *testing.T) {
		root := fakeRoot(t, "linux", true, true)
		testChdir(t, filepath.Dir(root))

		got, err := Locate("", envWith(filepath.Base(root)), "linux")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got.Executable))
		assert.True(t, filepath.IsAbs(got.Toolchain))
	})

	t.Run("unresolved root", func(t *testing.T) {
		_, err := Locate("", noEnv, "linux")
		require.ErrorIs(t, err, ErrRootUnresolved)
		assert.Contains(t, err.Error(), "vcpkg_root")
	})

	t.Run("missing executable names the attempted path", func(t *testing.T) {
		root := fakeRoot(t, "linux", false, true)
		_, err := Locate(root, noEnv, "linux")
		require.ErrorIs(t, err, ErrExecutableMissing)
		assert.Contains(t, err.Error(), filepath.Join(root, "vcpkg"))
	})

	t.Run("windows expects vcpkg.exe", func(t *testing.T) {
		root := fakeRoot(t, "linux", true, true)
		_, err := Locate(root, noEnv, "windows")
		require.ErrorIs(t, err, ErrExecutableMissing)
		assert.Contains(t, err.Error(), filepath.Join(root, "vcpkg.exe"))
	})

	t.Run("missing toolchain file", func(t *testing.T) {
		root := fakeRoot(t, "linux", true, false)
		_, err := Locate(root, noEnv, "linux")
		require.ErrorIs(t, err, ErrToolchainMissing)
		assert.NotErrorIs(t, err, ErrExecutableMissing)
		assert.Contains(t, err.Error(), filepath.Join(root, "scripts", "buildsystems", "vcpkg.cmake"))
	})

	t.Run("directory in place of executable", func(t *testing.T) {
		root := fakeRoot(t, "linux", false, true)
		require.NoError(t, os.Mkdir(filepath.Join(root, "vcpkg"), 0755))
		_, err := Locate(root, noEnv, "linux")
		assert.ErrorIs(t, err, ErrExecutableMissing)
	})
}

func TestPaths_Commands(t *testing.T) {
	p := Paths{Root: "/opt/vcpkg", Executable: "/opt/vcpkg/vcpkg", Toolchain: "/opt/vcpkg/scripts/buildsystems/vcpkg.cmake"}
	ex := runnertest.New(nil)
	ctx := context.Background()

	require.NoError(t, p.InitManifest(ctx, ex, "/work/demo"))
	require.NoError(t, p.AddPorts(ctx, ex, "/work/demo", "fmt", "spdlog"))
	require.NoError(t, p.AddPorts(ctx, ex, "/work/demo"))

	assert.Equal(t, []runner.Command{
		{Path: "/opt/vcpkg/vcpkg", Args: []string{"new", "--application"}, Dir: "/work/demo"},
		{Path: "/opt/vcpkg/vcpkg", Args: []string{"add", "port", "fmt", "spdlog"}, Dir: "/work/demo"},
	}, ex.Calls())
}

func TestPaths_CommandFailureIsWrapped(t *testing.T) {
	p := Paths{Executable: "/opt/vcpkg/vcpkg"}
	ex := runnertest.New(func(runner.Command) (runner.Status, error) {
		return runner.Status{Exited: true, Code: 3}, nil
	})

	err := p.AddPorts(context.Background(), ex, "/work", "boost")
	var exitErr *runner.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, err.Error(), "failed to add vcpkg dependencies [boost]")
}

func TestManifestName(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"standard manifest", "{\n  \"name\": \"demo\",\n  \"version\": \"0.1.0\"\n}\n", "demo"},
		{"first match wins", "{\n  \"name\": \"first\",\n  \"name\": \"second\"\n}", "first"},
		{"no trailing comma", "{\n\"name\":\"solo\"\n}", "solo"},
		{"crlf line endings", "{\r\n  \"name\": \"win\",\r\n}", "win"},
		{"nested key is not matched", "{\n  \"dependencies\": [{ \"name\": \"fmt\" }]\n}", ""},
		{"missing", "{\n  \"version\": \"1\"\n}", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ManifestName(tt.content))
		})
	}
}
