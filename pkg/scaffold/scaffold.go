// Package scaffold writes the on-disk layout of a lock package:
//
//	<name>/
//	  pyproject.toml
//	  <module>/__init__.py
//	  tests/__init__.py          (optional)
//	  tests/test_<module>.py     (optional)
//
// The manifest is always overwritten. Python files are only created when
// absent, so hand edits survive a regeneration.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/poetry-lock-package/pkg/errors"
	"github.com/matzehuels/poetry-lock-package/pkg/pyproject"
)

// Options configures [Write].
type Options struct {
	// Tests adds a tests package with a version smoke test.
	Tests bool
}

// Project describes a written lock package.
type Project struct {
	Dir      string // project directory
	Module   string // importable module name
	Manifest string // path of the written pyproject.toml
	Created  []string
}

// ModuleName converts a package name to its importable module name.
func ModuleName(pkg string) string {
	return strings.ReplaceAll(pkg, "-", "_")
}

// Write scaffolds the lock package described by m under parent. The project
// directory is named after the package.
func Write(parent string, m *pyproject.Manifest, opts Options) (*Project, error) {
	name := m.Name()
	if err := errors.ValidatePythonPackageName(name); err != nil {
		return nil, err
	}

	p := &Project{
		Dir:    filepath.Join(parent, name),
		Module: ModuleName(name),
	}

	initFile := filepath.Join(p.Dir, p.Module, "__init__.py")
	if err := p.createFile(initFile, fmt.Sprintf("__version__ = %q\n", m.Version())); err != nil {
		return nil, err
	}

	if opts.Tests {
		if err := p.createFile(filepath.Join(p.Dir, "tests", "__init__.py"), ""); err != nil {
			return nil, err
		}
		test := filepath.Join(p.Dir, "tests", "test_"+p.Module+".py")
		if err := p.createFile(test, testStub(p.Module, m.Version())); err != nil {
			return nil, err
		}
	}

	data, err := m.Bytes()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode manifest")
	}
	p.Manifest = filepath.Join(p.Dir, pyproject.ManifestFile)
	if err := os.WriteFile(p.Manifest, data, 0644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "write %s", p.Manifest)
	}
	return p, nil
}

// createFile writes contents to path unless the file already exists.
func (p *Project) createFile(path, contents string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "write %s", path)
	}
	p.Created = append(p.Created, path)
	return nil
}

func testStub(module, version string) string {
	return fmt.Sprintf(`from %s import __version__


def test_version():
    assert __version__ == %q
`, module, version)
}
