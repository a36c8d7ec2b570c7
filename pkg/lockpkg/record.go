package lockpkg

import (
	"maps"
	"slices"
)

// Record is one package entry of a lock file, possibly enriched with edge
// metadata from the packages that depend on it.
type Record map[string]any

// Closure is the set of collected records keyed by dependency name.
// Iteration order is first-insertion order; overwriting a name keeps its
// position.
type Closure struct {
	names   []string
	records map[string]Record
}

func newClosure() *Closure {
	return &Closure{records: make(map[string]Record)}
}

// Len returns the number of collected packages.
func (c *Closure) Len() int { return len(c.names) }

// Names returns the collected names in insertion order.
func (c *Closure) Names() []string { return slices.Clone(c.names) }

// Record returns the record collected under name.
func (c *Closure) Record(name string) (Record, bool) {
	r, ok := c.records[name]
	return r, ok
}

// Clone returns a deep copy of c.
func (c *Closure) Clone() *Closure {
	out := &Closure{
		names:   slices.Clone(c.names),
		records: make(map[string]Record, len(c.records)),
	}
	for name, r := range c.records {
		out.records[name] = Record(deepCopyMap(r))
	}
	return out
}

func (c *Closure) set(name string, r Record) {
	if _, ok := c.records[name]; !ok {
		c.names = append(c.names, name)
	}
	c.records[name] = r
}

// edges is an insertion-ordered name -> edge metadata mapping for one layer.
type edges struct {
	names []string
	meta  map[string]any
}

func newEdges() *edges {
	return &edges{meta: make(map[string]any)}
}

func (e *edges) put(name string, meta any) {
	if _, ok := e.meta[name]; !ok {
		e.names = append(e.names, name)
	}
	e.meta[name] = meta
}

func (e *edges) filter(allow Filter) *edges {
	out := newEdges()
	for _, name := range e.names {
		if allow(name) {
			out.put(name, e.meta[name])
		}
	}
	return out
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopy(v)
	}
	return out
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyMap(t)
	case Record:
		return Record(deepCopyMap(t))
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, m := range t {
			out[i] = deepCopyMap(m)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = deepCopy(x)
		}
		return out
	case []string:
		return slices.Clone(t)
	default:
		return v
	}
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
