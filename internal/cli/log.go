package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/publinks/pkg/links"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Found 12 links in 4 files (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports scan events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnScanStart(_ context.Context, path string, kind links.Kind) {
	h.logger.Debug("scan", "path", displayPath(path), "kind", kind)
}

func (h logHooks) OnScanComplete(_ context.Context, path string, kind links.Kind, n int, d time.Duration) {
	h.logger.Debug("scanned", "path", displayPath(path), "kind", kind, "links", n, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnScanSkipped(_ context.Context, path, reason string) {
	h.logger.Debug("skipped", "path", displayPath(path), "reason", reason)
}

func displayPath(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
