package errors

import (
	"regexp"
	"strings"
	"unicode"
)

const maxStackIDLength = 64

var stackIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateStackID validates a catalog stack identifier.
//
// IDs are persisted as cache keys and used in URLs, so the rules are strict:
//   - not empty, at most 64 characters
//   - lowercase letters, digits, '.', '_' and '-'
//   - must start with a letter or digit
func ValidateStackID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidStackID, "stack id cannot be empty")
	}
	if len(id) > maxStackIDLength {
		return New(ErrCodeInvalidStackID, "stack id too long (max %d characters): %q", maxStackIDLength, id)
	}
	if !stackIDRegex.MatchString(id) {
		return New(ErrCodeInvalidStackID, "invalid stack id: %q", id)
	}
	return nil
}

var repoPartRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateRepo validates a GitHub owner/repo pair.
// Both parts must be plain path segments so they can be interpolated into
// API URLs without escaping.
func ValidateRepo(owner, repo string) error {
	for _, part := range []string{owner, repo} {
		if part == "" {
			return New(ErrCodeInvalidRepo, "repository owner and name cannot be empty")
		}
		if strings.Contains(part, "..") || !repoPartRegex.MatchString(part) {
			return New(ErrCodeInvalidRepo, "invalid repository segment: %q", part)
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https) and no control characters.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	for _, r := range rawURL {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "URL contains invalid control characters")
		}
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
