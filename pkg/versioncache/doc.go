// Package versioncache persists resolved versions and implements the
// stale-while-revalidate flow consumers use to fetch them.
//
// A [Store] reads and writes one record under [Key]:
//
//	{"data": {"react": "19.0.0", ...}, "expires": 1735689600000}
//
// Empty versions are never written. A record that is missing, unparsable,
// expired, or has no non-empty value is treated as absent.
//
// A [Manager] combines a Store with a resolver. On a cold start it resolves
// synchronously and saves the result. On a warm start it returns the cached
// snapshot at once and revalidates in the background, merging fresh values
// over the snapshot so a transient failure never erases a known version.
// The consumer's update callback runs at most once per background pass,
// and only when the merged map differs from what it was served.
package versioncache
