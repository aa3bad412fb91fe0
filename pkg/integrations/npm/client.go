package npm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

// Client reads the "latest" dist-tag of npm packages.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an npm registry client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(nil, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another registry and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// LatestVersion returns the version published under the "latest" dist-tag.
// Scoped names like "@apollo/server" are accepted as is.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	pkg = strings.ToLower(strings.TrimSpace(pkg))

	var data latestResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s/latest", c.baseURL, pkg), &data); err != nil {
		return "", fmt.Errorf("npm package %s: %w", pkg, err)
	}
	if data.Version == "" {
		return "", fmt.Errorf("npm package %s: %w", pkg, integrations.ErrNoVersion)
	}
	return data.Version, nil
}

type latestResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
