package lockpkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/poetry-lock-package/pkg/errors"
)

func TestIgnorePatterns(t *testing.T) {
	allow, err := IgnorePatterns([]string{"pytest.*", "colorama"})
	require.NoError(t, err)

	tests := []struct {
		name string
		want bool
	}{
		{"pytest", false},
		{"pytest-cov", false},
		{"colorama", false},
		{"colorama2", true},
		{"my-pytest", true},
		{"loguru", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allow(tt.name))
		})
	}
}

func TestIgnorePatterns_Empty(t *testing.T) {
	allow, err := IgnorePatterns(nil)
	require.NoError(t, err)
	assert.True(t, allow("anything"))
}

func TestIgnorePatterns_Invalid(t *testing.T) {
	_, err := IgnorePatterns([]string{"("})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
