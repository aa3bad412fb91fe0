package maven

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the Maven Central search endpoint.
const DefaultBaseURL = "https://search.maven.org/solrsearch/select"

// Client queries Maven Central search.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Maven Central client.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(nil, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another search endpoint and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// LatestVersion returns the latest version of the artifact named by
// coordinate, in the form "groupId:artifactId".
func (c *Client) LatestVersion(ctx context.Context, coordinate string) (string, error) {
	groupID, artifactID, err := parseCoordinate(coordinate)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf("g:%q AND a:%q", groupID, artifactID)
	url := fmt.Sprintf("%s?q=%s&rows=1&wt=json", c.baseURL, integrations.URLEncode(query))

	var data searchResponse
	if err := c.Get(ctx, url, &data); err != nil {
		return "", fmt.Errorf("maven artifact %s: %w", coordinate, err)
	}
	if data.Response.NumFound == 0 || len(data.Response.Docs) == 0 {
		return "", fmt.Errorf("maven artifact %s: %w", coordinate, integrations.ErrNotFound)
	}

	doc := data.Response.Docs[0]
	version := doc.LatestVersion
	if version == "" {
		version = doc.Version
	}
	if version == "" {
		return "", fmt.Errorf("maven artifact %s: %w", coordinate, integrations.ErrNoVersion)
	}
	return version, nil
}

func parseCoordinate(coord string) (groupID, artifactID string, err error) {
	groupID, artifactID, ok := strings.Cut(coord, ":")
	if !ok || groupID == "" || artifactID == "" {
		return "", "", fmt.Errorf("invalid maven coordinate %q (expected groupId:artifactId)", coord)
	}
	// Drop a trailing ":version" if present.
	artifactID, _, _ = strings.Cut(artifactID, ":")
	return groupID, artifactID, nil
}

type searchResponse struct {
	Response struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	GroupID       string `json:"g"`
	ArtifactID    string `json:"a"`
	Version       string `json:"v"`
	LatestVersion string `json:"latestVersion"`
}
