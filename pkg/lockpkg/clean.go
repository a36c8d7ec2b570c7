package lockpkg

import "reflect"

// bookkeepingKeys are lock record fields that have no meaning in a
// dependency specification.
var bookkeepingKeys = []string{"description", "category", "name", "extras", "source", "files"}

// Clean turns a collected closure into dependency specifications for a
// manifest. The closure is not modified.
//
// For each record, bookkeeping fields are removed, a falsy "optional" is
// dropped and "python-versions" becomes "python" unless it is "*". A record
// left with only a version collapses to the bare version string.
func Clean(closure *Closure) map[string]any {
	work := closure.Clone()
	out := make(map[string]any, work.Len())
	for _, name := range work.names {
		out[name] = cleanRecord(work.records[name])
	}
	return out
}

func cleanRecord(r Record) any {
	for _, k := range bookkeepingKeys {
		delete(r, k)
	}

	if opt, ok := r["optional"]; ok && !truthy(opt) {
		delete(r, "optional")
	}

	if pv, ok := r["python-versions"]; ok {
		delete(r, "python-versions")
		r["python"] = pv
		if pv == "*" {
			delete(r, "python")
		}
	}

	if v, ok := r["version"]; ok && len(r) == 1 {
		return v
	}
	return map[string]any(r)
}

// truthy mirrors how TOML values read as booleans: zero values and empty
// collections are false.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len() > 0
	default:
		return !rv.IsZero()
	}
}
