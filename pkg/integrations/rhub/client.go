package rhub

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the r-hub API root.
const DefaultBaseURL = "https://api.r-hub.io"

// Client reads R release information from r-hub.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an r-hub client.
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

// ReleaseURL returns the URL describing the current R release.
func (c *Client) ReleaseURL() string {
	return c.baseURL + "/rversions/r-release"
}

// Release returns the current R release version.
func (c *Client) Release(ctx context.Context) (string, error) {
	return c.ReleaseFrom(ctx, c.ReleaseURL())
}

// ReleaseFrom decodes a release document served at url, which may be a
// relay wrapping [Client.ReleaseURL].
func (c *Client) ReleaseFrom(ctx context.Context, url string) (string, error) {
	var data releaseResponse
	if err := c.Get(ctx, url, &data); err != nil {
		return "", fmt.Errorf("r-hub release: %w", err)
	}
	if data.Version == "" {
		return "", fmt.Errorf("r-hub release: %w", integrations.ErrNoVersion)
	}
	return data.Version, nil
}

type releaseResponse struct {
	Version  string `json:"version"`
	Date     string `json:"date"`
	Nickname string `json:"nickname"`
}
