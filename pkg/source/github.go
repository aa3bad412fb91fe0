package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/integrations"
	"github.com/matzehuels/latest-stack/pkg/version"
)

// sqliteTagWindow is how many recent sqlite tags are compared.
const sqliteTagWindow = 30

// GitHub returns the default adapter for repo: the latest release tag,
// normalized. Only when the repository has no releases (404) does it fall
// back to the newest tag. Any other failure yields "".
func (r *Registry) GitHub(repo catalog.Repo) Func {
	name := "github:" + repo.String()
	return r.collapse(name, func(ctx context.Context) (string, error) {
		tag, err := r.github.LatestRelease(ctx, repo.Owner, repo.Repo)
		if err == nil {
			return version.Normalize(tag), nil
		}
		if !errors.Is(err, integrations.ErrNotFound) {
			return "", err
		}

		r.logger.Debug("no releases, trying tags", "repo", repo.String())
		tag, err = r.github.LatestTag(ctx, repo.Owner, repo.Repo)
		if err != nil {
			return "", err
		}
		return version.Normalize(tag), nil
	})
}

// githubRelease resolves a fixed repository's latest release without the
// tag fallback.
func (r *Registry) githubRelease(owner, repo string) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		tag, err := r.github.LatestRelease(ctx, owner, repo)
		if err != nil {
			return "", err
		}
		return version.Normalize(tag), nil
	}
}

// githubTag resolves a fixed repository's newest tag.
func (r *Registry) githubTag(owner, repo string) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		tag, err := r.github.LatestTag(ctx, owner, repo)
		if err != nil {
			return "", err
		}
		return version.Normalize(tag), nil
	}
}

// githubBestTag picks the greatest of the n most recent tags. Tag listings
// are ordered by name, not by version, so the newest tag is not always the
// highest.
func (r *Registry) githubBestTag(owner, repo string, n int) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		tags, err := r.github.Tags(ctx, owner, repo, n)
		if err != nil {
			return "", err
		}
		best := version.Best(tags)
		if best == "" {
			return "", fmt.Errorf("github tags %s/%s: %w", owner, repo, integrations.ErrNoVersion)
		}
		return best, nil
	}
}
