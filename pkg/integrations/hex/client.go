package hex

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the hex.pm API root.
const DefaultBaseURL = "https://hex.pm/api"

// Client provides access to the hex.pm package API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a hex.pm client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(map[string]string{"Accept": "application/json"}, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another API root and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// LatestStableVersion returns latest_stable_version of pkg.
func (c *Client) LatestStableVersion(ctx context.Context, pkg string) (string, error) {
	var data packageResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/packages/%s", c.baseURL, pkg), &data); err != nil {
		return "", fmt.Errorf("hex package %s: %w", pkg, err)
	}
	if data.LatestStableVersion == "" {
		return "", fmt.Errorf("hex package %s: %w", pkg, integrations.ErrNoVersion)
	}
	return data.LatestStableVersion, nil
}

type packageResponse struct {
	Name                string `json:"name"`
	LatestVersion       string `json:"latest_version"`
	LatestStableVersion string `json:"latest_stable_version"`
}
