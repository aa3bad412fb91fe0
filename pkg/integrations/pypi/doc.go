// Package pypi provides an HTTP client for the Python Package Index.
//
// # Usage
//
//	client := pypi.NewClient(10 * time.Second)
//	v, err := client.LatestVersion(ctx, "Django")
//
// Only the project endpoint (GET /pypi/{project}/json) is used; the
// version comes from info.version.
package pypi
