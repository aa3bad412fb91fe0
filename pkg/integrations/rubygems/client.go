package rubygems

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the RubyGems API root.
const DefaultBaseURL = "https://rubygems.org/api/v1"

// Client provides access to the RubyGems API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a RubyGems client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(nil, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another API root and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// LatestVersion returns the current version of gem.
func (c *Client) LatestVersion(ctx context.Context, gem string) (string, error) {
	var data gemResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/gems/%s.json", c.baseURL, gem), &data); err != nil {
		return "", fmt.Errorf("rubygems gem %s: %w", gem, err)
	}
	if data.Version == "" {
		return "", fmt.Errorf("rubygems gem %s: %w", gem, integrations.ErrNoVersion)
	}
	return data.Version, nil
}

type gemResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
