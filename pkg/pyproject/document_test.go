package pyproject

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/poetry-lock-package/pkg/errors"
)

func TestDocument_KeysFollowSourceOrder(t *testing.T) {
	doc, err := ParseDocument([]byte(`
[deps]
zeta = "1"
alpha = {version = "2", markers = "sys_platform == 'win32'"}
mid = "3"
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, doc.Keys("deps"))
}

func TestDocument_KeysAppendsNewKeysSorted(t *testing.T) {
	doc, err := ParseDocument([]byte("[t]\nb = 1\n"))
	require.NoError(t, err)

	doc.Set("x", "t", "z")
	doc.Set("x", "t", "a")

	assert.Equal(t, []string{"b", "a", "z"}, doc.Keys("t"))
}

func TestDocument_SetCreatesTables(t *testing.T) {
	doc, err := ParseDocument(nil)
	require.NoError(t, err)

	doc.Set("value", "a", "b", "c")

	assert.Equal(t, "value", doc.String("a", "b", "c"))
	_, ok := doc.Table("a", "b")
	assert.True(t, ok)
}

func TestDocument_Delete(t *testing.T) {
	doc, err := ParseDocument([]byte("[t]\na = 1\nb = 2\n"))
	require.NoError(t, err)

	doc.Delete([]string{"t"}, "a", "missing")
	doc.Delete([]string{"no", "such"}, "a")

	_, ok := doc.Get("t", "a")
	assert.False(t, ok)
	_, ok = doc.Get("t", "b")
	assert.True(t, ok)
}

func TestDocument_EncodeRoundTrip(t *testing.T) {
	doc, err := ParseDocument([]byte("[tool.poetry]\nname = \"demo\"\n"))
	require.NoError(t, err)
	doc.Set(map[string]any{
		"python": "^3.8",
		"colorama": map[string]any{"version": "0.4.4", "markers": `sys_platform == "win32"`},
	}, "tool", "poetry", "dependencies")

	data, err := doc.Bytes()
	require.NoError(t, err)

	again, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, "demo", again.String("tool", "poetry", "name"))
	assert.Equal(t, `sys_platform == "win32"`, again.String("tool", "poetry", "dependencies", "colorama", "markers"))
}

func TestReadDocument_Missing(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}
