// Package pipeline provides the lock package pipeline.
//
// This package implements the complete read → assemble → scaffold → build
// pipeline behind the command line tool. By centralizing this logic, the
// CLI stays a thin layer of flag parsing and output formatting.
//
// # Architecture
//
// The pipeline consists of these stages:
//
//  1. Collect: Read pyproject.toml and poetry.lock and compute the pinned
//     dependency closure
//  2. Scaffold: Write the lock package project next to the source project
//  3. Build: Run the external build tool in the lock project (optional)
//  4. Move: Move built artifacts into the source project's dist (optional)
//  5. Clean: Remove the lock project directory (optional)
//
// A graph of the pinned closure can be exported after the scaffold stage.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    ProjectDir: ".",
//	    AddRoot:    true,
//	    Build:      true,
//	})
package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/poetry-lock-package/pkg/builder"
	"github.com/matzehuels/poetry-lock-package/pkg/lockpkg"
	"github.com/matzehuels/poetry-lock-package/pkg/scaffold"
)

// DefaultProjectDir is the project directory used when none is given.
const DefaultProjectDir = "."

// Options contains all configuration for one pipeline run.
type Options struct {
	// ProjectDir holds pyproject.toml and poetry.lock. The lock project and
	// moved artifacts are written there too.
	ProjectDir string

	// Collect options
	AddRoot  bool     // pin the project itself
	Ignore   []string // regular expressions of package names to leave out
	MaxDepth int      // walker bound, 0 means lockpkg.DefaultMaxDepth

	// Output options
	Tests bool   // write a tests stub into the lock project
	Build bool   // run the build tool in the lock project
	Move  bool   // move built artifacts to <ProjectDir>/dist
	Clean bool   // remove the lock project directory at the end
	Graph string // write the pinned dependency graph to this path

	// Runtime options
	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Lock is the assembled lock package.
	Lock *lockpkg.Result

	// Project is the written lock project.
	Project *scaffold.Project

	// Artifacts are the moved build outputs.
	Artifacts []string

	// Cleaned reports whether the lock project directory was removed.
	Cleaned bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Pinned      int
	CollectTime time.Duration
	BuildTime   time.Duration
}

// ValidateAndSetDefaults checks options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ProjectDir == "" {
		o.ProjectDir = DefaultProjectDir
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", o.MaxDepth)
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = lockpkg.DefaultMaxDepth
	}
	o.validated = true
	return nil
}

// DistDir returns the directory artifacts are moved to.
func (o *Options) DistDir() string {
	return filepath.Join(o.ProjectDir, builder.DistDir)
}
