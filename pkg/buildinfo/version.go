// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/poetry-lock-package/pkg/buildinfo.Version=v0.5.0 \
//	    -X github.com/matzehuels/poetry-lock-package/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/poetry-lock-package/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/poetry-lock-package
//
// Binaries built without ldflags report "dev".
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"     // release tag, e.g. "v0.5.0"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // UTC build timestamp
)

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\ngo: %s", Version, Commit, Date, runtime.Version())
}

// Template returns the cobra version template.
func Template() string {
	return "{{.Name}} " + Version + "\n" + String() + "\n"
}
