// Package npm provides an HTTP client for the npm registry API.
//
// # Usage
//
//	client := npm.NewClient(10 * time.Second)
//	v, err := client.LatestVersion(ctx, "@builder.io/qwik")
//
// The client reads GET /{package}/latest, which returns the manifest of the
// version tagged "latest" in dist-tags. Pre-release tags are never consulted.
package npm
