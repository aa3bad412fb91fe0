// Package cursor provides an HTTP client for the community-run Cursor
// editor versions service.
package cursor
