package lockpkg

import (
	"github.com/matzehuels/poetry-lock-package/pkg/pyproject"
)

// dependenciesKey is the lock record field holding edge metadata.
const dependenciesKey = "dependencies"

// Logger receives progress and diagnostics from the collector.
// *log.Logger from github.com/charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(any, ...any) {}
func (nopLogger) Warn(any, ...any)  {}

// Collector computes the transitive closure of a set of root dependencies
// over a lock file.
//
// The zero value of Filter allows every package, MaxDepth <= 0 means
// DefaultMaxDepth and a nil Logger discards output.
type Collector struct {
	Lock     *pyproject.Lock
	Filter   Filter
	MaxDepth int
	Logger   Logger
}

// Collect seeds the closure with roots and expands it one layer at a time
// until no new dependencies appear or MaxDepth layers were walked. In the
// latter case a warning is logged and the partial closure is returned.
//
// Each layer merges the dependencies of every record still carrying them,
// drops the field from the parent, looks up the children and overlays the
// edge metadata on them. Edge versions are ignored: the resolved version of
// the child always wins over the range declared by the parent. A child
// already in the closure is replaced, so the last parent to declare it
// decides its markers.
//
// Any name that passes the filter but is absent from the lock file aborts
// the collection with an ErrCodePackageNotFound error.
func (c *Collector) Collect(roots []string) (*Closure, error) {
	allow := c.Filter
	if allow == nil {
		allow = AllowAll
	}
	logger := c.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	closure := newClosure()
	for _, name := range roots {
		if !allow(name) {
			logger.Debug("ignoring root dependency", "name", name)
			continue
		}
		r, err := Find(c.Lock, name)
		if err != nil {
			return nil, err
		}
		closure.set(name, r)
	}

	exhausted := func() {
		logger.Warn("stopped looking for dependencies", "max_depth", maxDepth)
	}
	for layer := range Bounded(maxDepth, exhausted) {
		next := newEdges()
		for _, name := range closure.names {
			r := closure.records[name]
			deps, ok := r[dependenciesKey]
			if !ok {
				continue
			}
			if m, ok := deps.(map[string]any); ok {
				for _, dep := range sortedKeys(m) {
					next.put(dep, m[dep])
				}
			}
			delete(r, dependenciesKey)
		}

		next = next.filter(allow)
		if len(next.names) == 0 {
			logger.Debug("dependency walk complete", "layers", layer, "packages", closure.Len())
			break
		}
		logger.Debug("walking dependency layer", "layer", layer, "size", len(next.names))

		found := make(map[string]Record, len(next.names))
		for _, dep := range next.names {
			r, err := Find(c.Lock, dep)
			if err != nil {
				return nil, err
			}
			found[dep] = r
		}

		for _, dep := range next.names {
			r := found[dep]
			for k, v := range edgeMetadata(next.meta[dep]) {
				r[k] = v
			}
			closure.set(dep, r)
		}
	}
	return closure, nil
}

// Collect computes the closure of roots over lock with default settings.
func Collect(lock *pyproject.Lock, roots []string, allow Filter) (*Closure, error) {
	c := &Collector{Lock: lock, Filter: allow}
	return c.Collect(roots)
}

// edgeMetadata returns the attributes an edge contributes to its target.
// A bare constraint string only carries a version, which the resolved record
// supersedes. Multiple-constraint lists carry no single set of attributes.
func edgeMetadata(edge any) map[string]any {
	m, ok := edge.(map[string]any)
	if !ok {
		return nil
	}
	out := deepCopyMap(m)
	delete(out, "version")
	return out
}
