package httputil

import "context"

// Attempt produces a value or "" on any failure.
type Attempt func(ctx context.Context) string

// FirstNonEmpty runs attempts in order and returns the first non-empty
// result. It returns "" when every attempt is empty or ctx is done before
// the next attempt starts.
func FirstNonEmpty(ctx context.Context, attempts ...Attempt) string {
	for _, attempt := range attempts {
		if ctx.Err() != nil {
			return ""
		}
		if v := attempt(ctx); v != "" {
			return v
		}
	}
	return ""
}

// Each turns a list of URLs into attempts that call fetch with each URL.
func Each(urls []string, fetch func(ctx context.Context, url string) string) []Attempt {
	attempts := make([]Attempt, len(urls))
	for i, u := range urls {
		attempts[i] = func(ctx context.Context) string { return fetch(ctx, u) }
	}
	return attempts
}
