package packagist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the Packagist metadata mirror.
const DefaultBaseURL = "https://repo.packagist.org"

// Client provides access to Packagist p2 metadata.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Packagist client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(nil, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another mirror and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// LatestVersion returns the newest stable version of pkg ("vendor/name").
// The raw version string is returned, including any leading "v".
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	pkg = strings.ToLower(strings.TrimSpace(pkg))

	var data p2Response
	if err := c.Get(ctx, fmt.Sprintf("%s/p2/%s.json", c.baseURL, pkg), &data); err != nil {
		return "", fmt.Errorf("packagist package %s: %w", pkg, err)
	}

	v := latestStable(data.Packages[pkg])
	if v == "" {
		return "", fmt.Errorf("packagist package %s: %w", pkg, integrations.ErrNoVersion)
	}
	return v, nil
}

// latestStable picks the first release that is neither a dev branch nor a
// pre-release. p2 metadata lists versions newest first.
func latestStable(versions []p2Version) string {
	for _, v := range versions {
		lv := strings.ToLower(v.Version)
		if strings.Contains(lv, "dev") || strings.Contains(lv, "-") {
			continue
		}
		if strings.Contains(strings.TrimPrefix(lv, "v"), ".") {
			return v.Version
		}
	}
	return ""
}

type p2Response struct {
	Packages map[string][]p2Version `json:"packages"`
}

type p2Version struct {
	Version string `json:"version"`
}
