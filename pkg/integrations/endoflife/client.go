package endoflife

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

// DefaultBaseURL is the endoflife.date API root.
const DefaultBaseURL = "https://endoflife.date/api"

// Cycle is one release cycle of a product, newest first in API responses.
type Cycle struct {
	Cycle  String `json:"cycle"`
	Latest String `json:"latest"`
}

// String decodes a JSON string or number into a string. Some products
// publish cycles as bare numbers (e.g. 2022).
type String string

// UnmarshalJSON accepts strings and numbers. Anything else decodes as "".
func (s *String) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = String(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		*s = String(num.String())
		return nil
	}
	*s = ""
	return nil
}

// Client reads product cycles from endoflife.date.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an endoflife.date client.
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

// Cycles returns all cycles of product.
func (c *Client) Cycles(ctx context.Context, product string) ([]Cycle, error) {
	var data []Cycle
	if err := c.Get(ctx, fmt.Sprintf("%s/%s.json", c.baseURL, product), &data); err != nil {
		return nil, fmt.Errorf("endoflife %s: %w", product, err)
	}
	return data, nil
}

// Latest returns the latest release of the newest cycle. With
// fallbackToCycle set, a cycle without a latest release reports its cycle
// name instead.
func (c *Client) Latest(ctx context.Context, product string, fallbackToCycle bool) (string, error) {
	cycles, err := c.Cycles(ctx, product)
	if err != nil {
		return "", err
	}
	if len(cycles) == 0 {
		return "", fmt.Errorf("endoflife %s: %w", product, integrations.ErrNoVersion)
	}
	if v := string(cycles[0].Latest); v != "" {
		return v, nil
	}
	if v := string(cycles[0].Cycle); fallbackToCycle && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("endoflife %s: %w", product, integrations.ErrNoVersion)
}
