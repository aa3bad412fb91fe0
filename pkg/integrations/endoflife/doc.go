// Package endoflife provides an HTTP client for endoflife.date.
//
// GET /api/{product}.json returns the product's release cycles, newest
// first. The newest cycle's "latest" field is the current release. A few
// products (visual-studio) publish cycles without a "latest" value; for
// those [Client.Latest] can report the cycle name instead.
package endoflife
