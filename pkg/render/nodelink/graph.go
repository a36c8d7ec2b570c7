package nodelink

import (
	"maps"
	"slices"

	"github.com/matzehuels/poetry-lock-package/pkg/lockpkg"
	"github.com/matzehuels/poetry-lock-package/pkg/pyproject"
)

// Node is one pinned package, or the project the lock package was made for.
type Node struct {
	ID      string
	Version string
	Markers string
	Project bool
}

// Edge points from a package to one of its pinned dependencies.
type Edge struct {
	From string
	To   string
}

// Graph is the pinned dependency graph.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// FromLock builds the graph of the pinned packages. Edges come from the
// dependencies each package declares in the lock file; dependencies that
// were not pinned (filtered out) are omitted. If project is not empty it is
// added as a node pointing at roots and replaces its own root pin.
func FromLock(lock *pyproject.Lock, pinned map[string]any, roots []string, project string) *Graph {
	g := &Graph{}
	self := ""
	if project != "" {
		self = lockpkg.NormalizeName(project)
	}
	byNorm := make(map[string]string, len(pinned))
	for _, name := range slices.Sorted(maps.Keys(pinned)) {
		if name == pyproject.PythonKey || lockpkg.NormalizeName(name) == self {
			continue
		}
		byNorm[lockpkg.NormalizeName(name)] = name
		n := Node{ID: name}
		switch spec := pinned[name].(type) {
		case string:
			n.Version = spec
		case map[string]any:
			n.Version, _ = spec["version"].(string)
			n.Markers, _ = spec["markers"].(string)
		}
		g.Nodes = append(g.Nodes, n)
	}

	if project != "" {
		g.Nodes = append(g.Nodes, Node{ID: project, Project: true})
		for _, r := range roots {
			if to, ok := byNorm[lockpkg.NormalizeName(r)]; ok {
				g.Edges = append(g.Edges, Edge{From: project, To: to})
			}
		}
	}

	for _, n := range g.Nodes {
		if n.Project {
			continue
		}
		r, err := lockpkg.Find(lock, n.ID)
		if err != nil {
			continue
		}
		deps, _ := r["dependencies"].(map[string]any)
		for _, dep := range slices.Sorted(maps.Keys(deps)) {
			if to, ok := byNorm[lockpkg.NormalizeName(dep)]; ok {
				g.Edges = append(g.Edges, Edge{From: n.ID, To: to})
			}
		}
	}
	return g
}
