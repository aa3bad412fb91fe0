package adoptium

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the Adoptium API root.
const DefaultBaseURL = "https://api.adoptium.net"

var semverPrefix = regexp.MustCompile(`^\d+\.\d+\.\d+`)

// Client reads Eclipse Temurin release versions.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an Adoptium client.
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

// LatestGAURL returns the URL listing the newest GA release.
func (c *Client) LatestGAURL() string {
	return c.baseURL + "/v3/info/release_versions?release_type=ga&page_size=1"
}

// LatestGA returns the newest GA OpenJDK version as "X.Y.Z".
func (c *Client) LatestGA(ctx context.Context) (string, error) {
	return c.LatestGAFrom(ctx, c.LatestGAURL())
}

// LatestGAFrom decodes a release listing served at url, which may be a
// relay wrapping [Client.LatestGAURL].
func (c *Client) LatestGAFrom(ctx context.Context, url string) (string, error) {
	var data releaseVersionsResponse
	if err := c.Get(ctx, url, &data); err != nil {
		return "", fmt.Errorf("adoptium release versions: %w", err)
	}
	if len(data.Versions) == 0 {
		return "", fmt.Errorf("adoptium release versions: %w", integrations.ErrNoVersion)
	}
	v := ParseVersion(data.Versions[0].OpenJDKVersion, data.Versions[0].Semver)
	if v == "" {
		return "", fmt.Errorf("adoptium release versions: %w", integrations.ErrNoVersion)
	}
	return v, nil
}

// ParseVersion returns the leading "X.Y.Z" of openjdkVersion, else that of
// semver. The first GA of a new major publishes openjdkVersion as "25+36",
// so semver carries the full triple there. When neither has that shape the
// raw openjdkVersion (or semver) is returned unchanged.
func ParseVersion(openjdkVersion, semver string) string {
	for _, raw := range []string{openjdkVersion, semver} {
		if v := semverPrefix.FindString(raw); v != "" {
			return v
		}
	}
	if openjdkVersion != "" {
		return openjdkVersion
	}
	return semver
}

type releaseVersionsResponse struct {
	Versions []struct {
		OpenJDKVersion string `json:"openjdk_version"`
		Semver         string `json:"semver"`
		Major          int    `json:"major"`
	} `json:"versions"`
}
