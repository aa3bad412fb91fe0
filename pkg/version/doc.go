// Package version normalizes raw release tags and compares the resulting
// dot-delimited version strings.
//
// # Normalization
//
// Registries and repositories publish tags in many shapes: "v1.2.3",
// "go1.22.0", "swift-6.2.3-RELEASE", "docker-v29.2.1", "version-3.51.2".
// [Normalize] strips the known prefixes and suffixes so that the result can
// be displayed and compared uniformly:
//
//	version.Normalize("swift-6.2.3-RELEASE") // "6.2.3"
//	version.Normalize("v1.2.3")              // "1.2.3"
//
// Unknown shapes pass through unchanged.
//
// # Comparison
//
// [Compare] splits on "." and compares segments numerically. Missing
// segments count as zero, so "1.2" equals "1.2.0". Segments that are not
// plain non-negative integers (pre-release suffixes such as "0-beta") are a
// known limitation: comparison stops there and reports equality. [Best] picks the greatest of several
// candidates using [Compare].
package version
