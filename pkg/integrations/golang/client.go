package golang

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the Go download site.
const DefaultBaseURL = "https://go.dev"

// Release is one entry of the go.dev download index.
type Release struct {
	Version string `json:"version"` // e.g. "go1.23.4"
	Stable  bool   `json:"stable"`
}

// Client reads the go.dev download index.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a go.dev client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(nil, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another host and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// Releases returns the releases listed by /dl/?mode=json, newest first.
func (c *Client) Releases(ctx context.Context) ([]Release, error) {
	var data []Release
	if err := c.Get(ctx, c.baseURL+"/dl/?mode=json", &data); err != nil {
		return nil, fmt.Errorf("go releases: %w", err)
	}
	return data, nil
}

// LatestStable returns the raw version of the first stable release, for
// example "go1.23.4".
func (c *Client) LatestStable(ctx context.Context) (string, error) {
	releases, err := c.Releases(ctx)
	if err != nil {
		return "", err
	}
	for _, r := range releases {
		if r.Stable && r.Version != "" {
			return r.Version, nil
		}
	}
	return "", fmt.Errorf("go releases: %w", integrations.ErrNoVersion)
}
