package actions

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigcpp/rig/internal/locate"
	"github.com/rigcpp/rig/internal/runner"
)

func TestBuild_ConfiguresThenBuilds(t *testing.T) {
	te := newTestEnv(t)
	root := te.project(t, "demo")

	require.NoError(t, Build(context.Background(), te.Env, BuildOptions{Preset: "dev"}))

	calls := te.fake.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, runner.Command{Path: "cmake", Args: []string{"--preset", "dev"}, Dir: root}, calls[0])
	assert.Equal(t, runner.Command{Path: "cmake", Args: []string{"--build", filepath.Join(root, "build", "dev")}, Dir: root}, calls[1])
}

func TestBuild_SkipsConfigureWhenCached(t *testing.T) {
	te := newTestEnv(t)
	root := te.project(t, "demo")
	mustWrite(t, filepath.Join(root, "build", "dev", CacheFile), "# cache\n")

	require.NoError(t, Build(context.Background(), te.Env, BuildOptions{Preset: "dev"}))

	assert.Equal(t, []string{"--build " + filepath.Join(root, "build", "dev")}, argsOf(te.fake.Calls()))
}

func TestBuild_CleanRemovesPresetDirAndReconfigures(t *testing.T) {
	te := newTestEnv(t)
	root := te.project(t, "demo")
	mustWrite(t, filepath.Join(root, "build", "dev", CacheFile), "# cache\n")
	mustWrite(t, filepath.Join(root, "build", "release", CacheFile), "# cache\n")

	require.NoError(t, Build(context.Background(), te.Env, BuildOptions{Preset: "dev", Clean: true}))

	assert.NoFileExists(t, filepath.Join(root, "build", "dev", CacheFile))
	assert.FileExists(t, filepath.Join(root, "build", "release", CacheFile))
	assert.Equal(t, []string{"--preset dev", "--build " + filepath.Join(root, "build", "dev")}, argsOf(te.fake.Calls()))
}

func TestBuild_FromSubdirectory(t *testing.T) {
	te := newTestEnv(t)
	root := te.project(t, "demo")
	te.wd = filepath.Join(root, "src", "detail")

	require.NoError(t, Build(context.Background(), te.Env, BuildOptions{Preset: "release"}))
	assert.Equal(t, root, te.fake.Calls()[0].Dir)
}

func TestBuild_SettingsArgs(t *testing.T) {
	te := newTestEnv(t)
	root := te.project(t, "demo")
	te.Settings.Build.CMake = "/opt/cmake/bin/cmake"
	te.Settings.Build.ConfigureArgs = "-DBUILD_TESTING=OFF"
	te.Settings.Build.BuildArgs = "--parallel 4"

	require.NoError(t, Build(context.Background(), te.Env, BuildOptions{Preset: "dev"}))

	calls := te.fake.Calls()
	assert.Equal(t, "/opt/cmake/bin/cmake", calls[0].Path)
	assert.Equal(t, []string{"--preset dev -DBUILD_TESTING=OFF", "--build " + filepath.Join(root, "build", "dev") + " --parallel 4"}, argsOf(calls))
}

func TestBuild_ConfigureFailure(t *testing.T) {
	te := newTestEnv(t)
	te.project(t, "demo")
	te.fake.Handler = func(runner.Command) (runner.Status, error) { return exited(1), nil }

	err := Build(context.Background(), te.Env, BuildOptions{Preset: "dev"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CMake configuration failed for preset 'dev'")
	assert.Contains(t, err.Error(), "exit code: 1")
	assert.Len(t, te.fake.Calls(), 1, "build step must not run after a failed configure")
}

func TestBuild_BuildFailure(t *testing.T) {
	te := newTestEnv(t)
	te.project(t, "demo")
	te.fake.Handler = func(cmd runner.Command) (runner.Status, error) {
		if cmd.Args[0] == "--build" {
			return exited(4), nil
		}
		return exited(0), nil
	}

	err := Build(context.Background(), te.Env, BuildOptions{Preset: "release"})
	var exitErr *runner.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 4, exitErr.Code)
	assert.Contains(t, err.Error(), "CMake build failed for preset 'release'")
}

func TestBuild_NotInProject(t *testing.T) {
	te := newTestEnv(t)

	err := Build(context.Background(), te.Env, BuildOptions{Preset: "dev"})
	assert.ErrorIs(t, err, locate.ErrRootNotFound)
	assert.Empty(t, te.fake.Calls())
}

func TestBuild_InvalidPreset(t *testing.T) {
	te := newTestEnv(t)
	te.project(t, "demo")

	for _, preset := range []string{"", "..", "../outside", `a\b`} {
		err := Build(context.Background(), te.Env, BuildOptions{Preset: preset})
		assert.ErrorIs(t, err, ErrInvalidPreset, "preset %q", preset)
	}
	assert.Empty(t, te.fake.Calls())
}
