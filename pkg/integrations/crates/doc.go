// Package crates provides an HTTP client for the crates.io API.
//
// # Usage
//
//	client := crates.NewClient(10 * time.Second)
//	v, err := client.LatestVersion(ctx, "tokio")
//
// crates.io rejects requests without a descriptive User-Agent, so every
// request carries one.
package crates
