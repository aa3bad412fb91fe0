// Package pkg provides the core libraries for latest-stack.
//
// # Overview
//
// latest-stack answers one question for a catalog of tech stacks: what is
// the latest released version of each? Every stack is resolved either by a
// dedicated version source (a package registry, a release feed, a fixed
// value) or by its GitHub repository's latest release.
//
// # Architecture
//
// The data flow for one resolution pass:
//
//	[catalog] stacks
//	         ↓
//	[resolve] select a strategy per stack, fan out concurrently
//	         ↓
//	[source] adapters → [integrations] clients → upstream APIs
//	         ↓
//	[version] normalize tags, pick the best tag
//	         ↓
//	[versioncache] merge with cached versions, persist via [cache]
//
// Every adapter failure collapses to an empty version. Nothing past an
// adapter ever sees an error from the network.
//
// # Quick Start
//
// Resolve the embedded catalog once:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/latest-stack/pkg/catalog"
//	    "github.com/matzehuels/latest-stack/pkg/resolve"
//	    "github.com/matzehuels/latest-stack/pkg/source"
//	)
//
//	reg := source.NewRegistry(source.Config{GitHubToken: token})
//	r := resolve.New(reg, resolve.Options{})
//	versions := r.ResolveAll(context.Background(), catalog.Default().Stacks)
//
// With a cache and background revalidation:
//
//	fc, _ := cache.NewFileCache(dir)
//	store := versioncache.NewStore(fc, versioncache.Options{})
//	m := versioncache.NewManager(store, r, nil)
//	versions := m.Fetch(ctx, stacks, func(updated resolve.VersionMap) {
//	    // called at most once, only when revalidation changed something
//	})
//	defer m.Wait()
//
// # Main Packages
//
// ## Domain
//
// [catalog] - Stack definitions, categories, the closed set of version
// sources, and the embedded default catalog.
//
// [version] - Tag normalization and numeric version comparison.
//
// [resolve] - Strategy selection and the concurrent resolution pass.
//
// [source] - The adapter registry: one adapter per version source, plus the
// default GitHub release adapter with its tag fallback.
//
// ## External Integrations
//
// [integrations] - HTTP clients for GitHub, GitLab, npm, PyPI, RubyGems,
// Packagist, Maven Central, crates.io, Hex, go.dev, endoflife.date, Adoptium,
// R-hub and Cursor.
//
// [httputil] - CORS relay URL building and the first-non-empty fallback chain.
//
// ## Infrastructure
//
// [cache] - Key/value backends: file, Redis, MongoDB and a null cache.
//
// [versioncache] - The persisted version record and stale-while-revalidate.
//
// [observability] - Hooks for resolution, cache and HTTP events.
//
// [errors] - Coded errors for catalog and configuration problems.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./...                        # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include tests against live APIs
package pkg
