package lockpkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a", "a"},
		{"a-b", "a-b"},
		{"a_b", "a-b"},
		{"A_B", "a-b"},
		{"zope.interface", "zope-interface"},
		{"Foo__Bar-.-baz", "foo-bar-baz"},
		{"win32-setctime", "win32-setctime"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeName(got), "must be idempotent")
		})
	}
}
