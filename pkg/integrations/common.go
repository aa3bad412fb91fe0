package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single registry request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")

	// ErrDecode is returned when a response body cannot be decoded.
	ErrDecode = errors.New("malformed response")

	// ErrNoVersion is returned when a response decodes but carries no usable version.
	ErrNoVersion = errors.New("no version in response")
)

// StatusError reports a non-200 HTTP response. It unwraps to [ErrNotFound]
// for 404 and to [ErrNetwork] otherwise.
type StatusError struct {
	Code int
	err  error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: status %d", e.err, e.Code)
}

func (e *StatusError) Unwrap() error { return e.err }

// NewHTTPClient creates an HTTP client with the given timeout.
// A timeout of zero uses [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// URLEncode percent-encodes a string for use in URLs.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }

// PathEscape escapes a single path segment, keeping scoped package names
// like "@scope/name" intact as one segment.
func PathEscape(s string) string { return url.PathEscape(s) }
