package gitlab

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the gitlab.com REST API.
const DefaultBaseURL = "https://gitlab.com/api/v4"

// Client provides access to GitLab project releases.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitLab API client. Pass an empty token for
// unauthenticated requests.
func NewClient(token string, timeout time.Duration) *Client {
	var headers map[string]string
	if token != "" {
		headers = map[string]string{"PRIVATE-TOKEN": token}
	}
	return &Client{
		Client:  integrations.NewClient(headers, timeout),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another API root and returns it.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// ReleasesURL returns the URL listing the newest release of project,
// given as a full path such as "gitlab-org/gitlab-runner".
func (c *Client) ReleasesURL(project string) string {
	return fmt.Sprintf("%s/projects/%s/releases?per_page=1", c.baseURL, integrations.PathEscape(project))
}

// LatestRelease returns the raw tag name of the newest release of project.
func (c *Client) LatestRelease(ctx context.Context, project string) (string, error) {
	return c.LatestReleaseFrom(ctx, c.ReleasesURL(project))
}

// LatestReleaseFrom decodes a releases listing served at url, which may be
// a relay wrapping [Client.ReleasesURL].
func (c *Client) LatestReleaseFrom(ctx context.Context, url string) (string, error) {
	var data []releaseResponse
	if err := c.Get(ctx, url, &data); err != nil {
		return "", fmt.Errorf("gitlab releases: %w", err)
	}
	if len(data) == 0 || data[0].TagName == "" {
		return "", fmt.Errorf("gitlab releases: %w", integrations.ErrNoVersion)
	}
	return data[0].TagName, nil
}

type releaseResponse struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	ReleasedAt string `json:"released_at"`
}
