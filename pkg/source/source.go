package source

import (
	"context"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/httputil"
	"github.com/matzehuels/latest-stack/pkg/integrations/adoptium"
	"github.com/matzehuels/latest-stack/pkg/integrations/crates"
	"github.com/matzehuels/latest-stack/pkg/integrations/cursor"
	"github.com/matzehuels/latest-stack/pkg/integrations/endoflife"
	"github.com/matzehuels/latest-stack/pkg/integrations/github"
	"github.com/matzehuels/latest-stack/pkg/integrations/gitlab"
	"github.com/matzehuels/latest-stack/pkg/integrations/golang"
	"github.com/matzehuels/latest-stack/pkg/integrations/hex"
	"github.com/matzehuels/latest-stack/pkg/integrations/maven"
	"github.com/matzehuels/latest-stack/pkg/integrations/npm"
	"github.com/matzehuels/latest-stack/pkg/integrations/packagist"
	"github.com/matzehuels/latest-stack/pkg/integrations/pypi"
	"github.com/matzehuels/latest-stack/pkg/integrations/rhub"
	"github.com/matzehuels/latest-stack/pkg/integrations/rubygems"
)

// Func resolves one product's latest version. It returns "" when the
// version cannot be determined.
type Func func(ctx context.Context) string

// Kind names a resolution strategy family.
type Kind string

// Strategy kinds.
const (
	KindGitHubRelease Kind = "github-release"
	KindGitHubTag     Kind = "github-tag"
	KindGitHubBestTag Kind = "github-best-tag"
	KindNPM           Kind = "npm"
	KindEndOfLife     Kind = "endoflife"
	KindPyPI          Kind = "pypi"
	KindGoDev         Kind = "go.dev"
	KindHex           Kind = "hex"
	KindCursor        Kind = "cursor"
	KindRubyGems      Kind = "rubygems"
	KindPackagist     Kind = "packagist"
	KindMaven         Kind = "maven"
	KindCrates        Kind = "crates"
	KindProxied       Kind = "proxied"
	KindStatic        Kind = "static"
)

// Info describes the strategy behind a source.
type Info struct {
	Source catalog.Source `json:"source"`
	Kind   Kind           `json:"kind"`
	// Target is the repository, package, product or endpoint queried.
	Target string `json:"target"`
}

// Config configures [NewRegistry].
type Config struct {
	// GitHubToken is sent as a bearer token to the GitHub API when set.
	GitHubToken string

	// Logger receives debug output for adapter failures. Nil discards.
	Logger *log.Logger

	// HTTPTimeout bounds each request. Zero uses the client default.
	HTTPTimeout time.Duration

	// Relays are tried in order by proxied sources. Nil uses
	// [httputil.DefaultRelays]; an empty non-nil slice disables relays.
	Relays []httputil.Relay

	// BaseURLs overrides upstream API roots, mainly for tests.
	BaseURLs BaseURLs
}

// BaseURLs holds optional API root overrides. Empty fields keep the
// client defaults.
type BaseURLs struct {
	GitHub    string
	GitLab    string
	NPM       string
	PyPI      string
	GoDev     string
	EndOfLife string
	Adoptium  string
	RHub      string
	Hex       string
	Cursor    string
	RubyGems  string
	Packagist string
	Maven     string
	Crates    string
}

// Registry maps every catalog source to its adapter.
// It is safe for concurrent use once built.
type Registry struct {
	logger *log.Logger
	relays []httputil.Relay

	github    *github.Client
	gitlab    *gitlab.Client
	npm       *npm.Client
	pypi      *pypi.Client
	golang    *golang.Client
	endoflife *endoflife.Client
	adoptium  *adoptium.Client
	rhub      *rhub.Client
	hex       *hex.Client
	cursor    *cursor.Client
	rubygems  *rubygems.Client
	packagist *packagist.Client
	maven     *maven.Client
	crates    *crates.Client

	adapters map[catalog.Source]Func
	infos    map[catalog.Source]Info
}

// NewRegistry builds the adapter table for every known source.
func NewRegistry(cfg Config) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	relays := cfg.Relays
	if relays == nil {
		relays = httputil.DefaultRelays()
	}

	t := cfg.HTTPTimeout
	r := &Registry{
		logger:    logger,
		relays:    relays,
		github:    github.NewClient(cfg.GitHubToken, t),
		gitlab:    gitlab.NewClient("", t),
		npm:       npm.NewClient(t),
		pypi:      pypi.NewClient(t),
		golang:    golang.NewClient(t),
		endoflife: endoflife.NewClient(t),
		adoptium:  adoptium.NewClient(t),
		rhub:      rhub.NewClient(t),
		hex:       hex.NewClient(t),
		cursor:    cursor.NewClient(t),
		rubygems:  rubygems.NewClient(t),
		packagist: packagist.NewClient(t),
		maven:     maven.NewClient(t),
		crates:    crates.NewClient(t),
		adapters:  make(map[catalog.Source]Func),
		infos:     make(map[catalog.Source]Info),
	}
	r.applyBaseURLs(cfg.BaseURLs)
	r.register()
	return r
}

func (r *Registry) applyBaseURLs(b BaseURLs) {
	set := func(u string, apply func(string)) {
		if u != "" {
			apply(u)
		}
	}
	set(b.GitHub, func(u string) { r.github.WithBaseURL(u) })
	set(b.GitLab, func(u string) { r.gitlab.WithBaseURL(u) })
	set(b.NPM, func(u string) { r.npm.WithBaseURL(u) })
	set(b.PyPI, func(u string) { r.pypi.WithBaseURL(u) })
	set(b.GoDev, func(u string) { r.golang.WithBaseURL(u) })
	set(b.EndOfLife, func(u string) { r.endoflife.WithBaseURL(u) })
	set(b.Adoptium, func(u string) { r.adoptium.WithBaseURL(u) })
	set(b.RHub, func(u string) { r.rhub.WithBaseURL(u) })
	set(b.Hex, func(u string) { r.hex.WithBaseURL(u) })
	set(b.Cursor, func(u string) { r.cursor.WithBaseURL(u) })
	set(b.RubyGems, func(u string) { r.rubygems.WithBaseURL(u) })
	set(b.Packagist, func(u string) { r.packagist.WithBaseURL(u) })
	set(b.Maven, func(u string) { r.maven.WithBaseURL(u) })
	set(b.Crates, func(u string) { r.crates.WithBaseURL(u) })
}

// Lookup returns the adapter for s. Unknown sources report false.
func (r *Registry) Lookup(s catalog.Source) (Func, bool) {
	fn, ok := r.adapters[s]
	return fn, ok
}

// Info describes the strategy registered for s.
func (r *Registry) Info(s catalog.Source) (Info, bool) {
	info, ok := r.infos[s]
	return info, ok
}

// Infos describes every registered source in catalog declaration order.
func (r *Registry) Infos() []Info {
	out := make([]Info, 0, len(r.infos))
	for _, s := range catalog.AllSources() {
		if info, ok := r.infos[s]; ok {
			out = append(out, info)
		}
	}
	return out
}

// Sources returns the registered sources, sorted.
func (r *Registry) Sources() []catalog.Source {
	out := make([]catalog.Source, 0, len(r.adapters))
	for s := range r.adapters {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func (r *Registry) add(s catalog.Source, kind Kind, target string, fn Func) {
	r.adapters[s] = fn
	r.infos[s] = Info{Source: s, Kind: kind, Target: target}
}

// collapse adapts a fallible fetch into a Func, logging failures.
func (r *Registry) collapse(name string, fetch func(ctx context.Context) (string, error)) Func {
	return func(ctx context.Context) string {
		v, err := fetch(ctx)
		if err != nil {
			r.logger.Debug("version lookup failed", "source", name, "err", err)
			return ""
		}
		return v
	}
}
