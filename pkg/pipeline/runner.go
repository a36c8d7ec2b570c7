package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/poetry-lock-package/pkg/builder"
	"github.com/matzehuels/poetry-lock-package/pkg/errors"
	"github.com/matzehuels/poetry-lock-package/pkg/lockpkg"
	"github.com/matzehuels/poetry-lock-package/pkg/observability"
	"github.com/matzehuels/poetry-lock-package/pkg/pyproject"
	"github.com/matzehuels/poetry-lock-package/pkg/render/nodelink"
	"github.com/matzehuels/poetry-lock-package/pkg/scaffold"
)

// Runner executes the lock package pipeline.
//
// The Runner holds no per-run state, so one Runner can serve several runs.
type Runner struct {
	Builder *builder.Builder
	Logger  *log.Logger
}

// NewRunner creates a runner with the given build tool driver.
// If b is nil, a Builder using the default command is used.
// If logger is nil, the default logger is used.
func NewRunner(b *builder.Builder, logger *log.Logger) *Runner {
	if b == nil {
		b = &builder.Builder{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Builder: b, Logger: logger}
}

// Run executes the complete pipeline. Completed filesystem outputs are left
// in place when a later stage fails.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)
	logger := opts.Logger

	result := &Result{}

	// Stage 1: Collect
	collectStart := time.Now()
	lock, err := r.Collect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	result.Lock = lock
	result.Stats.CollectTime = time.Since(collectStart)
	result.Stats.Pinned = len(lock.Dependencies)

	logger.Info("collected dependencies",
		"roots", len(lock.Roots),
		"pinned", result.Stats.Pinned,
		"duration", result.Stats.CollectTime)

	// Stage 2: Scaffold
	project, err := scaffold.Write(opts.ProjectDir, lock.Manifest, scaffold.Options{Tests: opts.Tests})
	observability.Pipeline().OnScaffold(ctx, filepath.Join(opts.ProjectDir, lock.Manifest.Name()), err)
	if err != nil {
		return result, fmt.Errorf("scaffold: %w", err)
	}
	result.Project = project
	logger.Info("wrote lock package", "dir", project.Dir, "created", len(project.Created))

	if opts.Graph != "" {
		if err := r.exportGraph(opts, lock); err != nil {
			return result, fmt.Errorf("graph: %w", err)
		}
		logger.Info("wrote dependency graph", "path", opts.Graph)
	}

	// Stage 3: Build
	if opts.Build {
		buildStart := time.Now()
		observability.Pipeline().OnBuildStart(ctx, project.Dir)
		err := r.Builder.Build(ctx, project.Dir)
		result.Stats.BuildTime = time.Since(buildStart)
		observability.Pipeline().OnBuildComplete(ctx, project.Dir, result.Stats.BuildTime, err)
		if err != nil {
			return result, fmt.Errorf("build: %w", err)
		}
		logger.Info("built wheel", "dir", project.Dir, "duration", result.Stats.BuildTime)
	}

	// Stage 4: Move
	if opts.Move {
		moved, err := builder.MoveArtifacts(project.Dir, opts.DistDir())
		switch {
		case errors.Is(err, errors.ErrCodeFileNotFound):
			logger.Warn("nothing to move, lock package has no dist directory", "dir", project.Dir)
		case err != nil:
			return result, fmt.Errorf("move: %w", err)
		default:
			result.Artifacts = moved
			logger.Info("moved artifacts", "count", len(moved), "dest", opts.DistDir())
		}
	}

	// Stage 5: Clean
	if opts.Clean {
		if err := builder.Clean(project.Dir); err != nil {
			return result, fmt.Errorf("clean: %w", err)
		}
		result.Cleaned = true
		logger.Debug("removed lock package", "dir", project.Dir)
	}

	return result, nil
}

// Collect reads the manifest and lock file from the project directory and
// assembles the lock package. The manifest is rewritten in memory only.
func (r *Runner) Collect(ctx context.Context, opts Options) (*lockpkg.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	m, err := pyproject.ReadManifest(filepath.Join(opts.ProjectDir, pyproject.ManifestFile))
	if err != nil {
		return nil, err
	}
	lock, err := pyproject.ReadLock(filepath.Join(opts.ProjectDir, pyproject.LockFile))
	if err != nil {
		return nil, err
	}
	filter, err := lockpkg.IgnorePatterns(opts.Ignore)
	if err != nil {
		return nil, err
	}

	project := m.Name()
	roots := lockpkg.RootDependencies(m)
	opts.Logger.Debug("read project", "name", project, "roots", len(roots), "locked", len(lock.Packages))

	hooks := observability.Pipeline()
	hooks.OnCollectStart(ctx, project, len(roots))
	start := time.Now()
	res, err := lockpkg.Assemble(m, lock, lockpkg.Options{
		AddRoot:  opts.AddRoot,
		Filter:   filter,
		MaxDepth: opts.MaxDepth,
		Logger:   opts.Logger,
	})
	pinned := 0
	if res != nil {
		pinned = len(res.Dependencies)
	}
	hooks.OnCollectComplete(ctx, project, pinned, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Runner) exportGraph(opts Options, res *lockpkg.Result) error {
	g := nodelink.FromLock(res.Lock, res.Dependencies, res.Roots, res.ProjectName)
	return nodelink.Export(g, opts.Graph, nodelink.Options{Detailed: true})
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
