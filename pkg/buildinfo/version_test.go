package buildinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	s := String()
	assert.Contains(t, s, "version: "+Version)
	assert.Contains(t, s, "commit: "+Commit)
	assert.Contains(t, s, "go: "+runtime.Version())
}

func TestTemplate(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v0.5.0"
	tmpl := Template()
	assert.Contains(t, tmpl, "{{.Name}} v0.5.0\n")
	assert.Contains(t, tmpl, "version: v0.5.0")
}
