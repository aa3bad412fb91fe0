// Package cli implements the latest-stack command-line interface.
//
// This package provides commands for listing the latest version of every
// stack in the catalog, looking up a single stack, browsing the catalog and
// its version sources, running an interactive dashboard or a JSON API, and
// managing the version cache. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - versions: Resolve and print versions for the catalog
//   - get: Resolve one stack or any GitHub repository
//   - catalog: List the stacks in the catalog
//   - sources: List the dedicated version sources
//   - dashboard: Interactive view that updates as revalidation completes
//   - serve: JSON HTTP API
//   - cache: Inspect or clear the version cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. At debug
// level the CLI also logs resolution passes and cache events.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/latest-stack/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
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
// Example output: "Resolved 42 versions (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks forwards resolution and cache events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func registerLogHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetResolveHooks(h)
	observability.SetCacheHooks(h)
}

func (h *logHooks) OnResolveStart(_ context.Context, passID string, total int) {
	h.logger.Debug("resolving", "pass", shortID(passID), "stacks", total)
}

func (h *logHooks) OnStackResolved(_ context.Context, passID, stackID, strategy, version string, d time.Duration) {
	h.logger.Debug("resolved", "pass", shortID(passID), "stack", stackID, "via", strategy,
		"version", displayVersion(version), "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnResolveComplete(_ context.Context, passID string, resolved, total int, d time.Duration) {
	h.logger.Debug("pass complete", "pass", shortID(passID), "resolved", resolved, "total", total,
		"elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, key string, entries int) {
	h.logger.Debug("cache hit", "key", key, "entries", entries)
}

func (h *logHooks) OnCacheMiss(_ context.Context, key, reason string) {
	h.logger.Debug("cache miss", "key", key, "reason", reason)
}

func (h *logHooks) OnCacheSet(_ context.Context, key string, entries int) {
	h.logger.Debug("cache write", "key", key, "entries", entries)
}

// shortID trims a uuid to its first group for compact log lines.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
