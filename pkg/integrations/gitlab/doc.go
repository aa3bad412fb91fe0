// Package gitlab provides an HTTP client for GitLab project releases.
//
// # Usage
//
//	client := gitlab.NewClient("", 10*time.Second)
//	tag, err := client.LatestRelease(ctx, "gitlab-org/gitlab-runner")
//
// The project path is escaped into a single path segment, so
// "gitlab-org/gitlab-runner" becomes "gitlab-org%2Fgitlab-runner".
//
// # Relays
//
// Browsers cannot call this endpoint directly, and some networks block it
// too. [Client.ReleasesURL] exposes the target so callers can wrap it in a
// relay, and [Client.LatestReleaseFrom] decodes the relayed response.
package gitlab
