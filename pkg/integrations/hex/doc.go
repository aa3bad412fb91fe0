// Package hex provides an HTTP client for hex.pm, the Erlang and Elixir
// package registry.
//
//	client := hex.NewClient(10 * time.Second)
//	v, err := client.LatestStableVersion(ctx, "phoenix")
package hex
