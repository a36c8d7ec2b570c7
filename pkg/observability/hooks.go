// Package observability provides hooks for metrics, tracing, and logging.
//
// The lock package pipeline reports its stages through [PipelineHooks]
// without depending on any observability backend. Hooks default to no-ops;
// an application registers its own implementation once at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnCollectStart(ctx, project, len(roots))
//	// ... walk the lock file ...
//	observability.Pipeline().OnCollectComplete(ctx, project, pinned, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the lock package pipeline.
type PipelineHooks interface {
	// Dependency collection events
	OnCollectStart(ctx context.Context, project string, roots int)
	OnCollectComplete(ctx context.Context, project string, pinned int, duration time.Duration, err error)

	// OnScaffold records the lock project being written to dir.
	OnScaffold(ctx context.Context, dir string, err error)

	// External build events
	OnBuildStart(ctx context.Context, dir string)
	OnBuildComplete(ctx context.Context, dir string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnCollectStart(context.Context, string, int) {}
func (NoopPipelineHooks) OnCollectComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnScaffold(context.Context, string, error)                     {}
func (NoopPipelineHooks) OnBuildStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, string, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
