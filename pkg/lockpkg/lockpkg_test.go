package lockpkg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/poetry-lock-package/pkg/pyproject"
)

func loadLock(t *testing.T) *pyproject.Lock {
	t.Helper()
	lock, err := pyproject.ReadLock("testdata/example1.lock")
	require.NoError(t, err)
	return lock
}

func parseLock(t *testing.T, data string) *pyproject.Lock {
	t.Helper()
	lock, err := pyproject.ParseLock([]byte(data))
	require.NoError(t, err)
	return lock
}

// recordingLogger captures warnings for assertions.
type recordingLogger struct {
	debug []string
	warn  []string
}

func (l *recordingLogger) Debug(msg any, _ ...any) { l.debug = append(l.debug, msg.(string)) }
func (l *recordingLogger) Warn(msg any, _ ...any)  { l.warn = append(l.warn, msg.(string)) }
