package github

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// Client provides access to the GitHub releases and tags endpoints.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower rate limits).
func NewClient(token string, timeout time.Duration) *Client {
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  integrations.NewClient(headers, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another API root and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// LatestRelease returns the raw tag name of the repository's latest
// published release. Repositories without releases report
// [integrations.ErrNotFound].
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (string, error) {
	var data releaseResponse
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &data); err != nil {
		return "", fmt.Errorf("github release %s/%s: %w", owner, repo, err)
	}
	if data.TagName == "" {
		return "", fmt.Errorf("github release %s/%s: %w", owner, repo, integrations.ErrNoVersion)
	}
	return data.TagName, nil
}

// Tags returns up to perPage raw tag names, most recent first as GitHub
// orders them.
func (c *Client) Tags(ctx context.Context, owner, repo string, perPage int) ([]string, error) {
	if perPage <= 0 {
		perPage = 1
	}
	var data []tagResponse
	url := fmt.Sprintf("%s/repos/%s/%s/tags?per_page=%d", c.baseURL, owner, repo, perPage)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, fmt.Errorf("github tags %s/%s: %w", owner, repo, err)
	}

	names := make([]string, 0, len(data))
	for _, t := range data {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names, nil
}

// LatestTag returns the most recent tag name.
func (c *Client) LatestTag(ctx context.Context, owner, repo string) (string, error) {
	tags, err := c.Tags(ctx, owner, repo, 1)
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("github tags %s/%s: %w", owner, repo, integrations.ErrNoVersion)
	}
	return tags[0], nil
}
