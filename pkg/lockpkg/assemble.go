package lockpkg

import (
	"strings"

	"github.com/matzehuels/poetry-lock-package/pkg/errors"
	"github.com/matzehuels/poetry-lock-package/pkg/pyproject"
)

// descriptionSuffix marks the generated package in its description.
const descriptionSuffix = " lock package"

// manifestOnlyKeys are [tool.poetry] fields that make no sense for a package
// that ships no code.
var manifestOnlyKeys = []string{"scripts", "readme", "include", "extras", "plugins", "packages"}

// LockName derives the lock package name from the project name. The
// separator follows the project's own style: "_" if the name already
// contains one, "-" otherwise.
func LockName(project string) string {
	sep := "-"
	if strings.Contains(project, "_") {
		sep = "_"
	}
	return project + sep + "lock"
}

// RootDependencies returns the direct dependency names of the manifest in
// declaration order, without the python entry.
func RootDependencies(m *pyproject.Manifest) []string {
	var out []string
	for _, name := range m.DependencyNames() {
		if name != pyproject.PythonKey {
			out = append(out, name)
		}
	}
	return out
}

// Options configures [Assemble].
type Options struct {
	// AddRoot pins the project itself (normalized name -> its version).
	AddRoot bool
	// Filter selects which packages to pin. Nil allows all.
	Filter Filter
	// MaxDepth bounds the dependency walk. Zero means DefaultMaxDepth.
	MaxDepth int
	Logger   Logger
}

// Result is the outcome of [Assemble].
type Result struct {
	Manifest     *pyproject.Manifest // rewritten lock package manifest
	Dependencies map[string]any      // pinned dependency table, python included
	Closure      *Closure            // raw collected records
	Roots        []string            // direct dependencies the walk started from
	ProjectName  string              // name of the source project
	Lock         *pyproject.Lock     // lock file the closure was read from
}

// Assemble computes the pinned dependency table for m and rewrites m in place
// into the lock package manifest: new name, suffixed description, the pinned
// table as dependencies and manifest-only fields removed.
func Assemble(m *pyproject.Manifest, lock *pyproject.Lock, opts Options) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if lock == nil {
		return nil, errors.New(errors.ErrCodeInvalidLock, "no lock file")
	}

	roots := RootDependencies(m)
	c := &Collector{
		Lock:     lock,
		Filter:   opts.Filter,
		MaxDepth: opts.MaxDepth,
		Logger:   opts.Logger,
	}
	closure, err := c.Collect(roots)
	if err != nil {
		return nil, err
	}

	deps := Clean(closure)
	deps[pyproject.PythonKey] = m.PythonConstraint()

	project := m.Name()
	if opts.AddRoot {
		deps[NormalizeName(project)] = m.Version()
	}

	m.SetName(LockName(project))
	m.SetDescription(strings.TrimSpace(m.Description() + descriptionSuffix))
	m.SetDependencies(deps)
	m.DeletePoetryKeys(manifestOnlyKeys...)

	return &Result{
		Manifest:     m,
		Dependencies: deps,
		Closure:      closure,
		Roots:        roots,
		ProjectName:  project,
		Lock:         lock,
	}, nil
}
