package cursor

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the community Cursor versions service.
const DefaultBaseURL = "https://cursor-versions.selfhoster.nl/api/v1"

// Client reads Cursor editor versions.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Cursor versions client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(nil, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another service root and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// Latest returns the newest Cursor version.
func (c *Client) Latest(ctx context.Context) (string, error) {
	var data versionResponse
	if err := c.Get(ctx, c.baseURL+"/versions?version=latest", &data); err != nil {
		return "", fmt.Errorf("cursor versions: %w", err)
	}
	if data.Version == "" {
		return "", fmt.Errorf("cursor versions: %w", integrations.ErrNoVersion)
	}
	return data.Version, nil
}

type versionResponse struct {
	Version string `json:"version"`
}
