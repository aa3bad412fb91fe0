// Package integrations provides HTTP clients for the registries and APIs
// that publish release versions.
//
// # Overview
//
// Each upstream has its own subpackage returning explicit Go errors:
//
//   - [github]: GitHub releases and tags
//   - [gitlab]: GitLab project releases
//   - [npm]: npm registry dist-tags
//   - [pypi]: Python Package Index
//   - [golang]: go.dev download index
//   - [endoflife]: endoflife.date product cycles
//   - [adoptium]: Eclipse Temurin (Java) release versions
//   - [rhub]: R release versions from r-hub
//   - [hex]: hex.pm (Elixir) packages
//   - [cursor]: Cursor editor versions
//   - [rubygems]: RubyGems
//   - [packagist]: PHP Composer packages
//   - [maven]: Maven Central
//   - [crates]: Rust crates.io
//
// # Client Pattern
//
// All clients embed [Client] and follow the same shape:
//
//	client := npm.NewClient(10 * time.Second)
//	v, err := client.LatestVersion(ctx, "@apollo/server")
//
// Clients that are reached through CORS relays also expose the target URL
// and a variant that fetches from an arbitrary URL, so callers can build
// relay chains with [httputil.URLs].
//
// # Errors
//
// Non-200 responses are reported as [*StatusError], which unwraps to
// [ErrNotFound] for 404 and [ErrNetwork] otherwise. Transport failures wrap
// [ErrNetwork]; undecodable bodies wrap [ErrDecode].
//
// # Adding a New Registry
//
//  1. Create a subpackage: pkg/integrations/<registry>/
//  2. Define response structs matching the API schema
//  3. Implement a Client embedding [Client] with an overridable base URL
//  4. Wire it into [source.NewRegistry] under a new catalog source
//
// [github]: github.com/matzehuels/latest-stack/pkg/integrations/github
// [gitlab]: github.com/matzehuels/latest-stack/pkg/integrations/gitlab
// [npm]: github.com/matzehuels/latest-stack/pkg/integrations/npm
// [pypi]: github.com/matzehuels/latest-stack/pkg/integrations/pypi
// [golang]: github.com/matzehuels/latest-stack/pkg/integrations/golang
// [endoflife]: github.com/matzehuels/latest-stack/pkg/integrations/endoflife
// [adoptium]: github.com/matzehuels/latest-stack/pkg/integrations/adoptium
// [rhub]: github.com/matzehuels/latest-stack/pkg/integrations/rhub
// [hex]: github.com/matzehuels/latest-stack/pkg/integrations/hex
// [cursor]: github.com/matzehuels/latest-stack/pkg/integrations/cursor
// [rubygems]: github.com/matzehuels/latest-stack/pkg/integrations/rubygems
// [packagist]: github.com/matzehuels/latest-stack/pkg/integrations/packagist
// [maven]: github.com/matzehuels/latest-stack/pkg/integrations/maven
// [crates]: github.com/matzehuels/latest-stack/pkg/integrations/crates
// [httputil.URLs]: github.com/matzehuels/latest-stack/pkg/httputil.URLs
// [source.NewRegistry]: github.com/matzehuels/latest-stack/pkg/source.NewRegistry
package integrations
