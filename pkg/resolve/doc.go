// Package resolve selects a version adapter for each stack and runs them
// concurrently.
//
// # Selection
//
// Exactly one strategy applies to a stack, checked in order:
//
//  1. a recognised VersionSource uses its registry adapter;
//  2. otherwise VersionRepo, then GitHubRepo, uses the default GitHub adapter;
//  3. otherwise the stack is skipped: no request is made and its id maps
//     to "".
//
// An unrecognised VersionSource is not an error; the stack falls through to
// its repository fields.
//
// # Fan-out
//
// [Resolver.ResolveAll] starts one goroutine per selected stack (optionally
// capped) and waits for all of them. Results are written under a mutex, so
// arrival order does not matter. A panic inside one adapter is recovered;
// that stack's id is left out of the result and the rest of the pass is
// unaffected.
package resolve
