package github

import "time"

// releaseResponse is the subset of GET /repos/{owner}/{repo}/releases/latest we read.
type releaseResponse struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
}

// tagResponse is one element of GET /repos/{owner}/{repo}/tags.
type tagResponse struct {
	Name string `json:"name"`
}
