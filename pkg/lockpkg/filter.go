package lockpkg

import (
	"regexp"

	"github.com/matzehuels/poetry-lock-package/pkg/errors"
)

// Filter reports whether a package may be pinned. Rejected packages, and
// everything reachable only through them, are left out of the closure.
type Filter func(name string) bool

// AllowAll is the filter that accepts every package.
func AllowAll(string) bool { return true }

// IgnorePatterns returns a filter rejecting every name that fully matches one
// of the given regular expressions.
func IgnorePatterns(patterns []string) (Filter, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(`^(?:` + p + `)$`)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid ignore pattern %q", p)
		}
		res = append(res, re)
	}
	return func(name string) bool {
		for _, re := range res {
			if re.MatchString(name) {
				return false
			}
		}
		return true
	}, nil
}
