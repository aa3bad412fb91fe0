package httputil

import "net/url"

// Style describes how a relay embeds the target URL.
type Style int

const (
	// QueryEncoded appends the query-escaped target to the prefix.
	QueryEncoded Style = iota
	// PathAppended appends the raw target to the prefix.
	PathAppended
)

func (s Style) String() string {
	switch s {
	case QueryEncoded:
		return "query"
	case PathAppended:
		return "path"
	default:
		return "unknown"
	}
}

// Relay is a public CORS relay endpoint.
type Relay struct {
	Prefix string
	Style  Style
}

// Wrap returns the relay URL that fetches target.
func (r Relay) Wrap(target string) string {
	if r.Style == QueryEncoded {
		return r.Prefix + url.QueryEscape(target)
	}
	return r.Prefix + target
}

// DefaultRelays returns the relays in the order they are tried.
// The returned slice is a fresh copy.
func DefaultRelays() []Relay {
	return []Relay{
		{Prefix: "https://api.allorigins.win/raw?url=", Style: QueryEncoded},
		{Prefix: "https://api.cors.lol/?url=", Style: QueryEncoded},
		{Prefix: "https://cors-anywhere.com/", Style: PathAppended},
	}
}

// URLs returns the request URLs for target in the order they should be
// tried: the target itself when direct is set, then one URL per relay.
func URLs(target string, direct bool, relays []Relay) []string {
	urls := make([]string, 0, len(relays)+1)
	if direct {
		urls = append(urls, target)
	}
	for _, r := range relays {
		urls = append(urls, r.Wrap(target))
	}
	return urls
}
