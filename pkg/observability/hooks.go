// Package observability provides hooks for instrumenting icon exports.
//
// Hooks are registered once at startup; libraries call them unconditionally
// and the no-op defaults keep that free when nothing is registered. Backends
// such as Prometheus or OpenTelemetry stay out of the library's imports.
//
//	observability.SetExportHooks(&myExportHooks{})
//
//	observability.Export().OnRenderStart(ctx, size)
//	// ... draw ...
//	observability.Export().OnRenderComplete(ctx, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from the iconset exporter.
type ExportHooks interface {
	// OnRenderStart fires before the master icon is drawn.
	OnRenderStart(ctx context.Context, size int)

	// OnRenderComplete fires after the master icon is drawn or the draw fails.
	OnRenderComplete(ctx context.Context, size int, duration time.Duration, err error)

	// OnFileWritten fires after one iconset entry is written, or fails to be.
	OnFileWritten(ctx context.Context, name string, pixels int, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from render cache lookups.
type CacheHooks interface {
	// OnCacheHit records a usable cached render.
	OnCacheHit(ctx context.Context, size int)

	// OnCacheMiss records a lookup that had to render.
	OnCacheMiss(ctx context.Context, size int)

	// OnCacheSet records a cache write of the encoded render.
	OnCacheSet(ctx context.Context, size int, bytes int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnRenderStart(context.Context, int)                           {}
func (NoopExportHooks) OnRenderComplete(context.Context, int, time.Duration, error) {}
func (NoopExportHooks) OnFileWritten(context.Context, string, int, error)           {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, int)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, int)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, int, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	exportHooks ExportHooks = NoopExportHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetExportHooks registers custom export hooks. A nil h is ignored.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	exportHooks = NoopExportHooks{}
	cacheHooks = NoopCacheHooks{}
}
