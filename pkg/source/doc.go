// Package source turns the registry clients into version adapters.
//
// An adapter is a [Func]: it takes a context and returns a normalized
// version string. Adapters never return errors and never panic on bad
// input. Every failure (transport, non-200 status, malformed body, rate
// limiting, timeouts) collapses to "" and is logged at debug level.
//
// # Registry
//
// [NewRegistry] builds one adapter per [catalog.Source]. The set of sources
// is closed, and the registry covers all of it:
//
//	reg := source.NewRegistry(source.Config{GitHubToken: token, Logger: logger})
//	fn, ok := reg.Lookup(catalog.SourceJava)
//	v := fn(ctx) // "21.0.5", or "" on failure
//
// Stacks without a dedicated source use [Registry.GitHub], the default
// adapter: latest release, falling back to the newest tag only when the
// repository has no releases (HTTP 404).
//
// # Strategies
//
// Each source is described by an [Info] naming its strategy kind and
// target, which the CLI lists with "latest-stack sources".
//
// [catalog.Source]: github.com/matzehuels/latest-stack/pkg/catalog.Source
package source
