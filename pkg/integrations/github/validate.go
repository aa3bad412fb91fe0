package github

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// GitHub repo names: 1-100 alphanumeric, hyphen, underscore, or dot
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// ParseRepoRef parses an "owner/repo" string and validates both parts.
func ParseRepoRef(ref string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(ref), "/")
	if !ok {
		return "", "", errors.New("invalid repo format: use owner/repo")
	}
	if !validOwner.MatchString(owner) {
		return "", "", errors.New("invalid owner: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen")
	}
	if !validRepo.MatchString(repo) {
		return "", "", errors.New("invalid repo: must be 1-100 alphanumeric characters, hyphens, underscores, or dots")
	}
	return owner, repo, nil
}
