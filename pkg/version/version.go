package version

import (
	"regexp"
	"strconv"
	"strings"
)

var releaseSuffix = regexp.MustCompile(`(?i)-RELEASE$`)

// Normalize converts a raw release tag into a bare version string.
//
// Rules are applied in order, each only when it matches:
//  1. leading "docker-v"     (moby/moby: "docker-v29.2.1")
//  2. leading "go"           (golang/go: "go1.22.0")
//  3. leading "swift-"       (swiftlang/swift: "swift-6.2.3-RELEASE")
//  4. trailing "-RELEASE", any case
//  5. leading "version-" or "vesion-" (sqlite/sqlite, typo included)
//  6. a single leading "v"
//
// Rule 4 runs after rule 3 so that Swift tags lose both affixes.
func Normalize(tag string) string {
	s := strings.TrimPrefix(tag, "docker-v")
	s = strings.TrimPrefix(s, "go")
	s = strings.TrimPrefix(s, "swift-")
	s = releaseSuffix.ReplaceAllString(s, "")
	if rest, ok := strings.CutPrefix(s, "version-"); ok {
		s = rest
	} else {
		s = strings.TrimPrefix(s, "vesion-")
	}
	return strings.TrimPrefix(s, "v")
}

// Compare returns a negative number when a < b, zero when they are equal,
// and a positive number when a > b.
//
// Comparison stops at the first segment that does not parse as a
// non-negative integer and reports the strings as equal from there on, so
// "1.2.0-beta" and "1.2.0" compare equal. This is a known limitation kept
// for compatibility with the simple numeric scheme; callers that need
// pre-release ordering must not rely on it.
func Compare(a, b string) int {
	pa := segments(a)
	pb := segments(b)
	for i := range max(len(pa), len(pb)) {
		x, xok := segmentAt(pa, i)
		y, yok := segmentAt(pb, i)
		if !xok || !yok {
			return 0
		}
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Best returns the greatest non-empty candidate after normalization.
// Earlier candidates win ties. It returns "" when every candidate
// normalizes to the empty string.
func Best(candidates []string) string {
	var best string
	for _, c := range candidates {
		v := Normalize(c)
		if v == "" {
			continue
		}
		if best == "" || Compare(v, best) > 0 {
			best = v
		}
	}
	return best
}

func segments(s string) []string {
	return strings.Split(s, ".")
}

// segmentAt reports the numeric value of the i-th segment. Missing and empty
// segments are zero; unparsable ones report ok=false.
func segmentAt(parts []string, i int) (n uint64, ok bool) {
	if i >= len(parts) || parts[i] == "" {
		return 0, true
	}
	n, err := strconv.ParseUint(parts[i], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
