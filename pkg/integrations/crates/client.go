package crates

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/latest-stack/pkg/buildinfo"
	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the crates.io API root.
const DefaultBaseURL = "https://crates.io/api/v1"

// Client provides access to the crates.io API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(map[string]string{"User-Agent": buildinfo.UserAgent()}, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another API root and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// LatestVersion returns the newest stable version of crate, falling back to
// the newest version of any kind when no stable release exists.
func (c *Client) LatestVersion(ctx context.Context, crate string) (string, error) {
	var data crateResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/crates/%s", c.baseURL, crate), &data); err != nil {
		return "", fmt.Errorf("crate %s: %w", crate, err)
	}
	if v := data.Crate.MaxStableVersion; v != "" {
		return v, nil
	}
	if v := data.Crate.MaxVersion; v != "" {
		return v, nil
	}
	return "", fmt.Errorf("crate %s: %w", crate, integrations.ErrNoVersion)
}

type crateResponse struct {
	Crate struct {
		Name             string `json:"name"`
		MaxVersion       string `json:"max_version"`
		MaxStableVersion string `json:"max_stable_version"`
	} `json:"crate"`
}
