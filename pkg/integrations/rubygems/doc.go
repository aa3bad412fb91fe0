// Package rubygems provides an HTTP client for the RubyGems.org API.
//
// # Usage
//
//	client := rubygems.NewClient(10 * time.Second)
//	v, err := client.LatestVersion(ctx, "rails")
package rubygems
