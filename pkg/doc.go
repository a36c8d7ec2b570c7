// Package pkg provides the libraries behind poetry-lock-package.
//
// # Overview
//
// poetry-lock-package turns a Poetry project into a "lock package": a
// package with no code whose dependencies are the project's full locked
// dependency closure, pinned to exact versions. Installing it reproduces the
// locked environment.
//
//  1. [pyproject] - Reading and writing pyproject.toml and poetry.lock
//  2. [lockpkg] - Closure collection, cleaning and manifest assembly
//  3. [scaffold] - Writing the lock package project to disk
//  4. [builder] - Running the external build tool and handling artifacts
//  5. [pipeline] - Orchestration (collect → scaffold → build → move → clean)
//
// # Architecture
//
//	pyproject.toml + poetry.lock
//	         ↓
//	    [pyproject] package (parse documents)
//	         ↓
//	    [lockpkg] package (collect closure, clean records, rewrite manifest)
//	         ↓
//	    [scaffold] package (write <name>-lock/)
//	         ↓
//	    [builder] package (poetry build --format wheel)
//
// Supporting packages:
//
//   - [errors] - Coded errors shared by all packages
//   - [observability] - Pipeline hooks for metrics and tracing
//   - [render/nodelink] - DOT and SVG graphs of the pinned closure
//   - [buildinfo] - Version information set at build time
//
// # Quick Start
//
//	m, _ := pyproject.ReadManifest("pyproject.toml")
//	lock, _ := pyproject.ReadLock("poetry.lock")
//	res, err := lockpkg.Assemble(m, lock, lockpkg.Options{AddRoot: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	project, err := scaffold.Write(".", res.Manifest, scaffold.Options{})
package pkg
