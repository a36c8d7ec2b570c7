package lockpkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func closureOf(records map[string]Record, order ...string) *Closure {
	c := newClosure()
	for _, name := range order {
		c.set(name, records[name])
	}
	return c
}

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   any
	}{
		{
			name:   "version only collapses",
			record: Record{"version": "1.2.3"},
			want:   "1.2.3",
		},
		{
			name:   "markers keep the record",
			record: Record{"version": "1.2.3", "markers": "sys_platform == 'win32'"},
			want:   map[string]any{"version": "1.2.3", "markers": "sys_platform == 'win32'"},
		},
		{
			name: "bookkeeping removed",
			record: Record{
				"name":        "demo",
				"version":     "1.0",
				"description": "A demo",
				"category":    "main",
				"extras":      map[string]any{"dev": []any{"pytest"}},
				"source":      map[string]any{"type": "git", "url": "https://example.com/demo.git"},
				"files":       []any{map[string]any{"file": "demo.whl", "hash": "sha256:00"}},
			},
			want: "1.0",
		},
		{
			name:   "falsy optional dropped",
			record: Record{"version": "1.0", "optional": false},
			want:   "1.0",
		},
		{
			name:   "truthy optional kept",
			record: Record{"version": "1.0", "optional": true},
			want:   map[string]any{"version": "1.0", "optional": true},
		},
		{
			name:   "python-versions renamed",
			record: Record{"version": "1.0", "python-versions": ">=3.6"},
			want:   map[string]any{"version": "1.0", "python": ">=3.6"},
		},
		{
			name:   "unconstrained python dropped",
			record: Record{"version": "1.0", "python-versions": "*"},
			want:   "1.0",
		},
		{
			name:   "unconstrained python overrides edge python",
			record: Record{"version": "1.0", "python-versions": "*", "python": ">=3.8"},
			want:   "1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(closureOf(map[string]Record{"demo": tt.record}, "demo"))
			assert.Equal(t, tt.want, got["demo"])
		})
	}
}

func TestClean_DoesNotMutateInput(t *testing.T) {
	c := closureOf(map[string]Record{
		"demo": {"name": "demo", "version": "1.0", "python-versions": "*"},
	}, "demo")

	_ = Clean(c)

	r, _ := c.Record("demo")
	assert.Equal(t, Record{"name": "demo", "version": "1.0", "python-versions": "*"}, r)
}

func TestTruthy(t *testing.T) {
	assert.False(t, truthy(nil))
	assert.False(t, truthy(false))
	assert.False(t, truthy(""))
	assert.False(t, truthy(int64(0)))
	assert.False(t, truthy([]any{}))
	assert.True(t, truthy(true))
	assert.True(t, truthy("yes"))
	assert.True(t, truthy(int64(1)))
	assert.True(t, truthy(map[string]any{"a": 1}))
}
