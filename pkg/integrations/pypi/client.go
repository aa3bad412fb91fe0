package pypi

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the PyPI JSON API root.
const DefaultBaseURL = "https://pypi.org/pypi"

// Client provides access to the PyPI JSON API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(nil, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another index and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// LatestVersion returns info.version for pkg, the newest non-yanked release
// as PyPI reports it. Project names are case-sensitive in the URL path but
// PyPI redirects to the canonical form.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	var data projectResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s/json", c.baseURL, pkg), &data); err != nil {
		return "", fmt.Errorf("pypi package %s: %w", pkg, err)
	}
	if data.Info.Version == "" {
		return "", fmt.Errorf("pypi package %s: %w", pkg, integrations.ErrNoVersion)
	}
	return data.Info.Version, nil
}

type projectResponse struct {
	Info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"info"`
}
