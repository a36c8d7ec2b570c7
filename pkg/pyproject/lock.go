package pyproject

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/poetry-lock-package/pkg/errors"
)

// Lock is a parsed poetry.lock. Package records are kept as generic maps so
// every field Poetry writes (including ones this tool does not know about)
// is available to the dependency collector.
type Lock struct {
	Packages []map[string]any `toml:"package"`
	Metadata map[string]any   `toml:"metadata"`
}

// ParseLock decodes lock file data.
func ParseLock(data []byte) (*Lock, error) {
	var lock Lock
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLock, err, "parse lock file")
	}
	for i, pkg := range lock.Packages {
		if name, _ := pkg["name"].(string); name == "" {
			return nil, errors.New(errors.ErrCodeInvalidLock, "package #%d has no name", i+1)
		}
	}
	return &lock, nil
}

// ReadLock reads the lock file at path.
func ReadLock(path string) (*Lock, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "read %s", path)
	}
	return ParseLock(data)
}

// Version returns metadata.lock-version, or "" for lock files that predate it.
func (l *Lock) Version() string {
	v, _ := l.Metadata["lock-version"].(string)
	return v
}
