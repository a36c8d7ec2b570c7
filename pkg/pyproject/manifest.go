package pyproject

import (
	"github.com/matzehuels/poetry-lock-package/pkg/errors"
)

// ManifestFile and LockFile are the file names Poetry uses in a project root.
const (
	ManifestFile = "pyproject.toml"
	LockFile     = "poetry.lock"
)

// PythonKey is the interpreter constraint entry of the dependency table.
// It is mandatory and never names a package.
const PythonKey = "python"

// poetryPath is the table holding the project definition.
var poetryPath = []string{"tool", "poetry"}

// Manifest is a pyproject.toml managed by Poetry.
type Manifest struct {
	*Document
}

// ReadManifest reads and validates the manifest at path.
func ReadManifest(path string) (*Manifest, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	m := &Manifest{Document: doc}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseManifest decodes and validates manifest data.
func ParseManifest(data []byte) (*Manifest, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest")
	}
	m := &Manifest{Document: doc}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the fields the lock package generator depends on.
func (m *Manifest) Validate() error {
	if _, ok := m.Table(poetryPath...); !ok {
		return errors.New(errors.ErrCodeInvalidManifest, "missing [tool.poetry] table")
	}
	if m.Name() == "" {
		return errors.New(errors.ErrCodeInvalidManifest, "missing tool.poetry.name")
	}
	if m.Version() == "" {
		return errors.New(errors.ErrCodeInvalidManifest, "missing tool.poetry.version")
	}
	if _, ok := m.Get(m.path("dependencies", PythonKey)...); !ok {
		return errors.New(errors.ErrCodeInvalidManifest, "missing tool.poetry.dependencies.python")
	}
	return nil
}

func (m *Manifest) path(keys ...string) []string {
	return append(append([]string{}, poetryPath...), keys...)
}

// Name returns tool.poetry.name.
func (m *Manifest) Name() string { return m.String(m.path("name")...) }

// Version returns tool.poetry.version.
func (m *Manifest) Version() string { return m.String(m.path("version")...) }

// Description returns tool.poetry.description.
func (m *Manifest) Description() string { return m.String(m.path("description")...) }

// PythonConstraint returns the interpreter constraint from the dependency
// table. It is returned as declared (usually a string, sometimes a table).
func (m *Manifest) PythonConstraint() any {
	v, _ := m.Get(m.path("dependencies", PythonKey)...)
	return v
}

// DependencyNames returns the declared dependency names in source order.
// The python entry is included; callers decide whether to skip it.
func (m *Manifest) DependencyNames() []string {
	return m.Keys(m.path("dependencies")...)
}

// SetName sets tool.poetry.name.
func (m *Manifest) SetName(name string) { m.Set(name, m.path("name")...) }

// SetDescription sets tool.poetry.description.
func (m *Manifest) SetDescription(desc string) { m.Set(desc, m.path("description")...) }

// SetDependencies replaces the dependency table wholesale.
func (m *Manifest) SetDependencies(deps map[string]any) { m.Set(deps, m.path("dependencies")...) }

// DeletePoetryKeys removes keys from the [tool.poetry] table.
func (m *Manifest) DeletePoetryKeys(keys ...string) { m.Delete(poetryPath, keys...) }
