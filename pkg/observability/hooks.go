// Package observability provides hooks for metrics, tracing, and logging.
//
// The extractors are pure functions and never call hooks themselves. Hosts
// (the CLI and the link API) wrap each scan and each HTTP request with hook
// calls, so instrumentation can be added without touching the scanners.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetScanHooks(&myScanHooks{})
//	    // ... run application
//	}
//
// Hosts call hooks around each scan:
//
//	observability.Scan().OnScanStart(ctx, path, kind)
//	ls := dispatch.Scan(text, kind, cfg)
//	observability.Scan().OnScanComplete(ctx, path, kind, len(ls), time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/publinks/pkg/links"
)

// =============================================================================
// Scan Hooks
// =============================================================================

// ScanHooks receives events around document scans.
type ScanHooks interface {
	// OnScanStart records the start of a scan. Path may be empty.
	OnScanStart(ctx context.Context, path string, kind links.Kind)

	// OnScanComplete records a finished scan and the number of links found.
	OnScanComplete(ctx context.Context, path string, kind links.Kind, linkCount int, duration time.Duration)

	// OnScanSkipped records a document that was not scanned, with the reason.
	OnScanSkipped(ctx context.Context, path string, reason string)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the link API.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, requestID, method, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, requestID, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopScanHooks is a no-op implementation of ScanHooks.
type NoopScanHooks struct{}

func (NoopScanHooks) OnScanStart(context.Context, string, links.Kind) {}
func (NoopScanHooks) OnScanComplete(context.Context, string, links.Kind, int, time.Duration) {
}
func (NoopScanHooks) OnScanSkipped(context.Context, string, string) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	scanHooks ScanHooks = NoopScanHooks{}
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetScanHooks registers custom scan hooks.
// This should be called once at application startup before any scans.
func SetScanHooks(h ScanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scanHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Scan returns the registered scan hooks.
func Scan() ScanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scanHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	scanHooks = NoopScanHooks{}
	httpHooks = NoopHTTPHooks{}
}
