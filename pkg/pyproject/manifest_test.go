package pyproject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/poetry-lock-package/pkg/errors"
)

func TestReadManifest(t *testing.T) {
	m, err := ReadManifest("testdata/pyproject.toml")
	require.NoError(t, err)

	assert.Equal(t, "poetry-lock-package", m.Name())
	assert.Equal(t, "0.4.4", m.Version())
	assert.Equal(t, "Poetry lock package generator", m.Description())
	assert.Equal(t, "^3.6.2", m.PythonConstraint())
	assert.Equal(t, []string{"python", "toml", "loguru", "atomicwrites"}, m.DependencyNames())
}

func TestManifest_Edits(t *testing.T) {
	m, err := ReadManifest("testdata/pyproject.toml")
	require.NoError(t, err)

	m.SetName("poetry-lock-package-lock")
	m.SetDescription("locked")
	m.SetDependencies(map[string]any{"python": "^3.6.2", "toml": "0.10.2"})
	m.DeletePoetryKeys("scripts", "readme")

	assert.Equal(t, "poetry-lock-package-lock", m.Name())
	assert.Equal(t, "locked", m.Description())
	assert.ElementsMatch(t, []string{"python", "toml"}, m.DependencyNames())
	_, ok := m.Get("tool", "poetry", "scripts")
	assert.False(t, ok)
	_, ok = m.Get("tool", "poetry", "readme")
	assert.False(t, ok)
	_, ok = m.Get("build-system")
	assert.True(t, ok, "unrelated tables must survive")
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no poetry table", "[project]\nname = \"x\"\n"},
		{"no name", "[tool.poetry]\nversion = \"1\"\n[tool.poetry.dependencies]\npython = \"*\"\n"},
		{"no version", "[tool.poetry]\nname = \"x\"\n[tool.poetry.dependencies]\npython = \"*\"\n"},
		{"no python", "[tool.poetry]\nname = \"x\"\nversion = \"1\"\n[tool.poetry.dependencies]\ntoml = \"*\"\n"},
		{"not toml", "[tool.poetry\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidManifest), "got %v", err)
		})
	}
}
