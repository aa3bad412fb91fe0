// Package golang provides an HTTP client for the go.dev download index.
//
// The index at https://go.dev/dl/?mode=json lists supported releases, newest
// first, each flagged stable or not. Versions carry the "go" prefix
// ("go1.23.4"); callers normalize them.
package golang
