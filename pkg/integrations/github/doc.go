// Package github provides an HTTP client for the GitHub releases and tags API.
//
// # Usage
//
//	client := github.NewClient(os.Getenv("GITHUB_TOKEN"), 10*time.Second)
//
//	tag, err := client.LatestRelease(ctx, "golang", "go")
//	if errors.Is(err, integrations.ErrNotFound) {
//	    tag, err = client.LatestTag(ctx, "golang", "go")
//	}
//
// Tag names are returned raw; callers normalize them.
//
// # Authentication
//
// A token is optional but recommended. Without one the API allows 60
// requests per hour per address, which a full catalog pass exceeds; rate
// limited responses surface as [integrations.ErrNetwork] with status 403
// or 429.
package github
