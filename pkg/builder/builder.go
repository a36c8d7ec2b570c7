// Package builder drives the external build tool for a generated lock
// package and handles its artifacts.
//
// Subprocesses always receive an explicit working directory; the process
// working directory is never changed.
package builder

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/matzehuels/poetry-lock-package/pkg/errors"
)

// DefaultCommand is the build tool used when none is configured.
const DefaultCommand = "poetry"

// DistDir is where the build tool leaves its artifacts.
const DistDir = "dist"

// Builder runs `<Command> build --format wheel` in a project directory.
type Builder struct {
	Command string    // executable name or path (default "poetry")
	Stdout  io.Writer // build output (discarded if nil)
	Stderr  io.Writer // build diagnostics (kept for the error message if nil)
}

// Args returns the build tool arguments.
func (b *Builder) Args() []string {
	return []string{"build", "--format", "wheel"}
}

func (b *Builder) command() string {
	if b.Command == "" {
		return DefaultCommand
	}
	return b.Command
}

// Build runs the build tool in dir and waits for it. A non-zero exit is an
// ErrCodeBuildFailed error.
func (b *Builder) Build(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, b.command(), b.Args()...)
	cmd.Dir = dir
	cmd.Stdout = b.Stdout

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if b.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, b.Stderr)
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "no output"
		}
		return errors.Wrap(errors.ErrCodeBuildFailed, err, "%s %s in %s: %s",
			b.command(), strings.Join(b.Args(), " "), dir, msg)
	}
	return nil
}

// MoveArtifacts moves every file from <projectDir>/dist into destDir,
// creating destDir if needed. It returns the destination paths.
func MoveArtifacts(projectDir, destDir string) ([]string, error) {
	src := filepath.Join(projectDir, DistDir)
	entries, err := os.ReadDir(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "no build artifacts in %s", src)
		}
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "read %s", src)
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "create %s", destDir)
	}

	var moved []string
	for _, e := range entries {
		from := filepath.Join(src, e.Name())
		to := filepath.Join(destDir, e.Name())
		if err := os.Rename(from, to); err != nil {
			return moved, errors.Wrap(errors.ErrCodeFilesystem, err, "move %s", from)
		}
		moved = append(moved, to)
	}
	return moved, nil
}

// Clean removes the generated project directory.
func Clean(projectDir string) error {
	if err := os.RemoveAll(projectDir); err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "remove %s", projectDir)
	}
	return nil
}
