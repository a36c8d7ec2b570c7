// Package pyproject reads and writes the two TOML documents a Poetry project
// keeps on disk: the manifest (pyproject.toml) and the lock file (poetry.lock).
//
// Documents are kept as generic key/value trees rather than typed structs so
// that unknown manifest sections survive a read-edit-write cycle. Edits go
// through a small set of operations ([Document.Set], [Document.Delete]) on
// dotted key paths.
package pyproject

import (
	"bytes"
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/poetry-lock-package/pkg/errors"
)

// Document is a parsed TOML document.
//
// Key order of the source is remembered (via toml.MetaData) so callers can
// walk a table in the order the user wrote it, which matters when later
// entries override earlier ones.
type Document struct {
	root map[string]any
	keys []toml.Key
}

// ParseDocument decodes TOML data into a Document.
func ParseDocument(data []byte) (*Document, error) {
	root := make(map[string]any)
	md, err := toml.Decode(string(data), &root)
	if err != nil {
		return nil, err
	}
	return &Document{root: root, keys: md.Keys()}, nil
}

// ReadDocument reads and decodes the TOML file at path.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "read %s", path)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	return doc, nil
}

// Get returns the value at the dotted key path.
func (d *Document) Get(path ...string) (any, bool) {
	var cur any = d.root
	for _, k := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[k]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at path, or "" if it is absent or not a string.
func (d *Document) String(path ...string) string {
	v, _ := d.Get(path...)
	s, _ := v.(string)
	return s
}

// Table returns the table at path.
func (d *Document) Table(path ...string) (map[string]any, bool) {
	v, ok := d.Get(path...)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// Keys returns the keys of the table at path in source order. Keys added
// after parsing are appended in sorted order.
func (d *Document) Keys(path ...string) []string {
	table, ok := d.Table(path...)
	if !ok {
		return nil
	}

	var out []string
	seen := make(map[string]bool, len(table))
	for _, k := range d.keys {
		if len(k) != len(path)+1 || !slices.Equal([]string(k[:len(path)]), path) {
			continue
		}
		name := k[len(path)]
		if _, present := table[name]; present && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	var added []string
	for k := range table {
		if !seen[k] {
			added = append(added, k)
		}
	}
	slices.Sort(added)
	return append(out, added...)
}

// Set stores value at path, creating intermediate tables as needed.
// An empty path is a no-op.
func (d *Document) Set(value any, path ...string) {
	if len(path) == 0 {
		return
	}
	cur := d.root
	for _, k := range path[:len(path)-1] {
		next, ok := cur[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[k] = next
		}
		cur = next
	}
	cur[path[len(path)-1]] = value
}

// Delete removes the given keys from the table at path. Missing keys are ignored.
func (d *Document) Delete(path []string, keys ...string) {
	table, ok := d.Table(path...)
	if !ok {
		return
	}
	for _, k := range keys {
		delete(table, k)
	}
}

// Encode writes the document as TOML.
func (d *Document) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(d.root)
}

// Bytes returns the encoded document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
