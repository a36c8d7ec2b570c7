// Package lockpkg computes the pinned dependency table of a lock package.
//
// A lock package is a minimal companion project whose only purpose is to
// depend on the exact versions recorded in a Poetry lock file. Installing it
// recreates the original resolution without running the resolver again.
//
// # Pipeline
//
// The computation runs in three steps:
//
//  1. [Collector.Collect] walks the lock file from the project's direct
//     dependencies, merging edge metadata (markers, interpreter constraints)
//     declared by each parent onto the resolved record of the child.
//  2. [Clean] strips lock bookkeeping and folds version-only records into a
//     bare version string.
//  3. [Assemble] rewrites the project manifest into the lock package manifest.
//
// # Known limitation
//
// When several parents declare different markers for the same dependency,
// only the metadata merged last survives.
//
// # Example
//
//	lock, _ := pyproject.ReadLock("poetry.lock")
//	c := &lockpkg.Collector{Lock: lock}
//	closure, err := c.Collect([]string{"loguru"})
//	if err != nil {
//	    return err
//	}
//	pinned := lockpkg.Clean(closure)
//	// pinned["win32-setctime"] == map[string]any{"version": "1.0.3", ...}
package lockpkg
