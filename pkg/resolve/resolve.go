package resolve

import (
	"context"
	"io"
	"maps"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/observability"
	"github.com/matzehuels/latest-stack/pkg/source"
)

// VersionMap maps stack ids to resolved versions. A missing key and an
// empty value both mean the version is unknown.
type VersionMap map[string]string

// Clone returns a copy of m.
func (m VersionMap) Clone() VersionMap {
	if m == nil {
		return VersionMap{}
	}
	return maps.Clone(m)
}

// Known returns a copy of m without empty values.
func (m VersionMap) Known() VersionMap {
	out := make(VersionMap, len(m))
	for id, v := range m {
		if v != "" {
			out[id] = v
		}
	}
	return out
}

// HasAny reports whether at least one version is known.
func (m VersionMap) HasAny() bool {
	for _, v := range m {
		if v != "" {
			return true
		}
	}
	return false
}

// Adapters supplies version adapters. [*source.Registry] implements it.
type Adapters interface {
	Lookup(s catalog.Source) (source.Func, bool)
	GitHub(repo catalog.Repo) source.Func
}

// Options configures a [Resolver].
type Options struct {
	// Concurrency caps in-flight adapters. Zero or negative means no cap.
	Concurrency int

	// Logger receives pass summaries and recovered panics. Nil discards.
	Logger *log.Logger
}

// Resolver runs adapters for stacks.
type Resolver struct {
	adapters    Adapters
	concurrency int
	logger      *log.Logger
}

// New creates a Resolver backed by adapters.
func New(adapters Adapters, opts Options) *Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Resolver{
		adapters:    adapters,
		concurrency: opts.Concurrency,
		logger:      logger,
	}
}

// Select reports the strategy that applies to stack and its adapter.
// The adapter is nil for [StrategyNone].
func (r *Resolver) Select(stack catalog.Stack) (Strategy, source.Func) {
	if stack.VersionSource != "" {
		if fn, ok := r.adapters.Lookup(stack.VersionSource); ok {
			return Strategy{Kind: StrategySource, Source: stack.VersionSource}, fn
		}
	}
	if repo := stack.LookupRepo(); repo != nil {
		return Strategy{Kind: StrategyGitHub, Repo: *repo}, r.adapters.GitHub(*repo)
	}
	return Strategy{Kind: StrategyNone}, nil
}

// Resolve resolves a single stack. Skipped stacks and adapter panics
// yield "".
func (r *Resolver) Resolve(ctx context.Context, stack catalog.Stack) string {
	_, fn := r.Select(stack)
	if fn == nil {
		return ""
	}
	v, _ := r.run(ctx, stack.ID, fn)
	return v
}

// ResolveAll resolves every stack concurrently and returns once all
// adapters have settled. Skipped stacks map to "". Stacks whose adapter
// panicked are absent. It never returns an error.
func (r *Resolver) ResolveAll(ctx context.Context, stacks []catalog.Stack) VersionMap {
	passID := uuid.NewString()
	hooks := observability.Resolve()
	start := time.Now()
	hooks.OnResolveStart(ctx, passID, len(stacks))

	var (
		mu       sync.Mutex
		out      = make(VersionMap, len(stacks))
		resolved int
		g        errgroup.Group
	)
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}

	record := func(id, v string) {
		mu.Lock()
		defer mu.Unlock()
		if prev, seen := out[id]; seen && prev != "" {
			return
		}
		out[id] = v
		if v != "" {
			resolved++
		}
	}

	for _, stack := range stacks {
		strategy, fn := r.Select(stack)
		if fn == nil {
			record(stack.ID, "")
			continue
		}
		g.Go(func() error {
			began := time.Now()
			v, ok := r.run(ctx, stack.ID, fn)
			if !ok {
				return nil
			}
			hooks.OnStackResolved(ctx, passID, stack.ID, strategy.String(), v, time.Since(began))
			record(stack.ID, v)
			return nil
		})
	}
	_ = g.Wait()

	elapsed := time.Since(start)
	hooks.OnResolveComplete(ctx, passID, resolved, len(stacks), elapsed)
	r.logger.Debug("resolution pass complete",
		"pass", passID, "resolved", resolved, "total", len(stacks), "elapsed", elapsed.Round(time.Millisecond))
	return out
}

// run calls fn, converting a panic into ok=false.
func (r *Resolver) run(ctx context.Context, id string, fn source.Func) (v string, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Warn("version adapter panicked", "stack", id, "panic", p)
			v, ok = "", false
		}
	}()
	return fn(ctx), true
}
