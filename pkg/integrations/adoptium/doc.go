// Package adoptium provides an HTTP client for the Adoptium (Eclipse
// Temurin) API.
//
// The newest GA release comes from
// /v3/info/release_versions?release_type=ga&page_size=1. Its
// openjdk_version looks like "21.0.5+11-LTS"; only the leading "21.0.5" is
// kept.
package adoptium
