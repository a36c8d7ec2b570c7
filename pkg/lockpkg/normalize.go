package lockpkg

import (
	"regexp"
	"strings"
)

var separatorRun = regexp.MustCompile(`[-_.]+`)

// NormalizeName returns the canonical form of a Python package name (PEP 503):
// runs of "-", "_" and "." collapse to a single "-" and the result is
// lower-cased. Only used for identity comparison, never for display.
func NormalizeName(name string) string {
	return strings.ToLower(separatorRun.ReplaceAllString(name, "-"))
}
