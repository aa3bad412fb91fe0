package source

import (
	"context"

	"github.com/matzehuels/latest-stack/pkg/httputil"
	"github.com/matzehuels/latest-stack/pkg/version"
)

// relayed runs fetch against the target's direct URL (when direct is set)
// and then each configured relay, returning the first non-empty result.
func (r *Registry) relayed(name, target string, direct bool, fetch func(ctx context.Context, url string) (string, error)) Func {
	attempt := func(ctx context.Context, url string) string {
		v, err := fetch(ctx, url)
		if err != nil {
			r.logger.Debug("version lookup failed", "source", name, "url", url, "err", err)
			return ""
		}
		return v
	}
	urls := httputil.URLs(target, direct, r.relays)
	return func(ctx context.Context) string {
		return httputil.FirstNonEmpty(ctx, httputil.Each(urls, attempt)...)
	}
}

func (r *Registry) java() Func {
	return r.relayed("java", r.adoptium.LatestGAURL(), true, r.adoptium.LatestGAFrom)
}

func (r *Registry) rLang() Func {
	return r.relayed("r", r.rhub.ReleaseURL(), false, r.rhub.ReleaseFrom)
}

func (r *Registry) gitlabRunner() Func {
	const project = "gitlab-org/gitlab-runner"
	return r.relayed("gitlab-runner", r.gitlab.ReleasesURL(project), true,
		func(ctx context.Context, url string) (string, error) {
			tag, err := r.gitlab.LatestReleaseFrom(ctx, url)
			if err != nil {
				return "", err
			}
			return version.Normalize(tag), nil
		})
}
