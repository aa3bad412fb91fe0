// Package httputil provides request helpers shared by the version sources.
//
// # Overview
//
// Some upstream APIs cannot be reached directly from every environment, so
// their sources go through a list of public CORS relays:
//
//   - [Relay]: one relay endpoint and how it embeds the target URL
//   - [DefaultRelays]: the relays used when nothing else is configured
//   - [URLs]: the ordered request URLs for a target
//   - [FirstNonEmpty]: try attempts in order, stop at the first non-empty result
//
// # Relay styles
//
// A relay either takes the target as a query-encoded parameter
// ([QueryEncoded], e.g. "https://api.allorigins.win/raw?url=") or has the
// raw target appended to its path ([PathAppended], e.g.
// "https://cors-anywhere.com/").
//
// # Chains
//
// A chain never fails: each attempt reports an empty string on any problem
// and the chain moves on. If every attempt is empty the chain yields "".
// Context cancellation stops the chain before the next attempt.
//
//	urls := httputil.URLs(target, true, httputil.DefaultRelays())
//	v := httputil.FirstNonEmpty(ctx, httputil.Each(urls, fetch)...)
package httputil
