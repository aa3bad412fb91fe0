package versioncache

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/resolve"
)

// Resolver runs a resolution pass. [*resolve.Resolver] implements it.
type Resolver interface {
	ResolveAll(ctx context.Context, stacks []catalog.Stack) resolve.VersionMap
}

// Manager runs the stale-while-revalidate flow over a Store.
type Manager struct {
	store    *Store
	resolver Resolver
	logger   *log.Logger

	wg sync.WaitGroup
}

// NewManager creates a Manager. A nil logger discards output.
func NewManager(store *Store, resolver Resolver, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Manager{store: store, resolver: resolver, logger: logger}
}

// Store returns the underlying store.
func (m *Manager) Store() *Store { return m.store }

// Fetch returns versions for stacks.
//
// Without a valid cached record it resolves synchronously, saves the result
// and returns it. With one it returns the cached snapshot immediately and
// revalidates in the background; onUpdate, if non-nil, is called once with
// the merged map when that differs from the snapshot. The background pass
// ignores cancellation of ctx.
func (m *Manager) Fetch(ctx context.Context, stacks []catalog.Stack, onUpdate func(resolve.VersionMap)) resolve.VersionMap {
	snapshot, ok := m.store.Load(ctx)
	if !ok {
		fresh := m.resolver.ResolveAll(ctx, stacks)
		m.save(ctx, fresh)
		return fresh
	}

	bg := context.WithoutCancel(ctx)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.revalidate(bg, stacks, snapshot.Clone(), onUpdate)
	}()
	return snapshot
}

// Refresh resolves synchronously regardless of the cache, merges the result
// over any cached snapshot, saves and returns the merged map.
func (m *Manager) Refresh(ctx context.Context, stacks []catalog.Stack) resolve.VersionMap {
	fresh := m.resolver.ResolveAll(ctx, stacks)
	merged := fresh
	if cached, ok := m.store.Load(ctx); ok {
		merged = Merge(cached, fresh)
	}
	m.save(ctx, merged)
	return merged
}

// Wait blocks until every background revalidation has finished.
func (m *Manager) Wait() { m.wg.Wait() }

func (m *Manager) revalidate(ctx context.Context, stacks []catalog.Stack, snapshot resolve.VersionMap, onUpdate func(resolve.VersionMap)) {
	fresh := m.resolver.ResolveAll(ctx, stacks)
	merged := Merge(snapshot, fresh)
	m.save(ctx, merged)

	if !Changed(snapshot, merged) {
		m.logger.Debug("revalidation found no changes", "entries", len(merged))
		return
	}
	m.logger.Debug("revalidation updated versions", "entries", len(merged))
	if onUpdate != nil {
		onUpdate(merged)
	}
}

func (m *Manager) save(ctx context.Context, v resolve.VersionMap) {
	if err := m.store.Save(ctx, v); err != nil {
		m.logger.Warn("could not save version cache", "err", err)
	}
}

// Merge overlays the non-empty values of fresh on old. Values of old are
// kept where fresh is empty or missing. Neither input is modified.
func Merge(old, fresh resolve.VersionMap) resolve.VersionMap {
	out := old.Clone()
	for id, v := range fresh {
		if v != "" {
			out[id] = v
		}
	}
	return out
}

// Changed reports whether next differs from prev in size or in any value.
func Changed(prev, next resolve.VersionMap) bool {
	if len(prev) != len(next) {
		return true
	}
	for id, v := range next {
		if old, ok := prev[id]; !ok || old != v {
			return true
		}
	}
	return false
}
