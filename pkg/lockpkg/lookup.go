package lockpkg

import (
	"github.com/matzehuels/poetry-lock-package/pkg/errors"
	"github.com/matzehuels/poetry-lock-package/pkg/pyproject"
)

// Find returns a deep copy of the first lock record whose name equals name,
// either verbatim or after normalization. A missing record is an
// ErrCodePackageNotFound error: the closure would be incomplete.
func Find(lock *pyproject.Lock, name string) (Record, error) {
	want := NormalizeName(name)
	for _, pkg := range lock.Packages {
		got, _ := pkg["name"].(string)
		if got == name || NormalizeName(got) == want {
			return Record(deepCopyMap(pkg)), nil
		}
	}
	return nil, errors.New(errors.ErrCodePackageNotFound, "could not find %q in lock file", name)
}
