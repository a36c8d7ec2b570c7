package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/poetry-lock-package/pkg/buildinfo"
	"github.com/matzehuels/poetry-lock-package/pkg/errors"
	"github.com/matzehuels/poetry-lock-package/pkg/pyproject"
)

// copyProject copies testdata/project into a fresh directory.
func copyProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{pyproject.ManifestFile, pyproject.LockFile} {
		data, err := os.ReadFile(filepath.Join("testdata", "project", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}
	return dir
}

// execute runs the root command with args and returns stdout and logs.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	c.Out = &out
	c.Interactive = false

	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestRootCommand_Generate(t *testing.T) {
	dir := copyProject(t)

	out, logs, err := execute(t, "-C", dir, "--print")
	require.NoError(t, err)

	assert.Contains(t, out, "Generated")
	assert.Contains(t, out, "poetry-lock-package-lock")
	assert.Contains(t, out, "PACKAGE")
	assert.Contains(t, out, "win32-setctime")
	assert.Contains(t, out, `sys_platform == "win32"`)
	assert.Contains(t, logs, "Generated lock package")

	m, err := pyproject.ReadManifest(filepath.Join(dir, "poetry-lock-package-lock", pyproject.ManifestFile))
	require.NoError(t, err)
	deps, ok := m.Table("tool", "poetry", "dependencies")
	require.True(t, ok)
	assert.Equal(t, "0.4.4", deps["poetry-lock-package"])
}

func TestRootCommand_IgnoreAndNoRoot(t *testing.T) {
	dir := copyProject(t)

	_, _, err := execute(t, "-C", dir, "--no-root", "-i", "loguru", "--ignore", "atomic.*")
	require.NoError(t, err)

	m, err := pyproject.ReadManifest(filepath.Join(dir, "poetry-lock-package-lock", pyproject.ManifestFile))
	require.NoError(t, err)
	deps, _ := m.Table("tool", "poetry", "dependencies")
	assert.Equal(t, []string{"python", "toml"}, sortedNames(deps))
}

func TestRootCommand_Graph(t *testing.T) {
	dir := copyProject(t)
	graph := filepath.Join(dir, "deps.dot")

	out, _, err := execute(t, "-C", dir, "--graph", graph)
	require.NoError(t, err)
	assert.FileExists(t, graph)
	assert.Contains(t, out, graph)
}

func TestRootCommand_Errors(t *testing.T) {
	t.Run("missing project", func(t *testing.T) {
		_, _, err := execute(t, "-C", t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, _, err := execute(t, "-C", copyProject(t), "-i", "[")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	})

	t.Run("bad max depth", func(t *testing.T) {
		t.Setenv(envMaxDepth, "lots")
		_, _, err := execute(t, "-C", copyProject(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), envMaxDepth)
	})

	t.Run("positional args", func(t *testing.T) {
		_, _, err := execute(t, "extra")
		assert.Error(t, err)
	})
}

func TestRootCommand_Version(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, buildinfo.Version)
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")

	_, _, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(envPoetry, "")
	t.Setenv(envMaxDepth, "")
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config{Poetry: "poetry", MaxDepth: 1000}, cfg)

	t.Setenv(envPoetry, "/opt/poetry/bin/poetry")
	t.Setenv(envMaxDepth, "25")
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config{Poetry: "/opt/poetry/bin/poetry", MaxDepth: 25}, cfg)

	t.Setenv(envMaxDepth, "0")
	_, err = loadConfig()
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestPrintPinned(t *testing.T) {
	var buf bytes.Buffer
	printPinned(&buf, map[string]any{
		"python": "^3.8",
		"toml":   "0.10.2",
		"colorama": map[string]any{
			"version": "0.4.4",
			"markers": `sys_platform == "win32"`,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "MARKERS")
	assert.Contains(t, out, "^3.8")
	assert.Contains(t, out, `sys_platform == "win32"`)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("colorama")), bytes.Index(buf.Bytes(), []byte("toml")))
}

func sortedNames(m map[string]any) []string {
	var names []string
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
