package source

import (
	"context"

	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/version"
)

// register fills the adapter table. Every member of catalog.AllSources
// must be registered here.
func (r *Registry) register() {
	// GitHub releases of fixed repositories.
	for _, e := range []struct {
		src         catalog.Source
		owner, repo string
	}{
		{catalog.SourceGCP, "actions-hub", "gcloud"},
		{catalog.SourceDeno, "denoland", "deno"},
		{catalog.SourceCorepack, "nodejs", "corepack"},
		{catalog.SourceOpenSearch, "opensearch-project", "OpenSearch"},
		{catalog.SourceJUnit, "junit-team", "junit5"},
		{catalog.SourceTalos, "siderolabs", "talos"},
	} {
		target := e.owner + "/" + e.repo
		r.add(e.src, KindGitHubRelease, target, r.collapse(string(e.src), r.githubRelease(e.owner, e.repo)))
	}

	// GitHub tags only.
	for _, e := range []struct {
		src         catalog.Source
		owner, repo string
	}{
		{catalog.SourceAWS, "aws", "aws-cli"},
		{catalog.SourceDart, "dart-lang", "sdk"},
		{catalog.SourceNix, "NixOS", "nix"},
	} {
		target := e.owner + "/" + e.repo
		r.add(e.src, KindGitHubTag, target, r.collapse(string(e.src), r.githubTag(e.owner, e.repo)))
	}

	r.add(catalog.SourceSQLite, KindGitHubBestTag, "sqlite/sqlite",
		r.collapse("sqlite", r.githubBestTag("sqlite", "sqlite", sqliteTagWindow)))

	// npm "latest" dist-tag.
	for _, e := range []struct {
		src catalog.Source
		pkg string
	}{
		{catalog.SourceExpo, "expo"},
		{catalog.SourceQwik, "@builder.io/qwik"},
		{catalog.SourceAlpineJS, "alpinejs"},
		{catalog.SourceHTMX, "htmx.org"},
		{catalog.SourceApolloServer, "@apollo/server"},
		{catalog.SourceGraphQL, "graphql"},
		{catalog.SourceDynamoDB, "@aws-sdk/client-dynamodb"},
		{catalog.SourceJSONSchema, "json-schema"},
	} {
		r.add(e.src, KindNPM, e.pkg, r.collapse(string(e.src), func(ctx context.Context) (string, error) {
			return r.npm.LatestVersion(ctx, e.pkg)
		}))
	}

	// endoflife.date product cycles.
	for _, e := range []struct {
		src      catalog.Source
		product  string
		fallback bool
	}{
		{catalog.SourcePython, "python", false},
		{catalog.SourceRuby, "ruby", false},
		{catalog.SourcePHP, "php", false},
		{catalog.SourcePostgreSQL, "postgresql", false},
		{catalog.SourceMongoDB, "mongodb", false},
		{catalog.SourceMySQL, "mysql", false},
		{catalog.SourceElixir, "elixir", false},
		{catalog.SourceVisualStudio, "visual-studio", true},
	} {
		r.add(e.src, KindEndOfLife, e.product, r.collapse(string(e.src), func(ctx context.Context) (string, error) {
			return r.endoflife.Latest(ctx, e.product, e.fallback)
		}))
	}

	r.add(catalog.SourceDjango, KindPyPI, "Django", r.collapse("django", func(ctx context.Context) (string, error) {
		return r.pypi.LatestVersion(ctx, "Django")
	}))

	r.add(catalog.SourceGo, KindGoDev, "go.dev/dl", r.collapse("go", func(ctx context.Context) (string, error) {
		v, err := r.golang.LatestStable(ctx)
		return version.Normalize(v), err
	}))

	r.add(catalog.SourcePhoenix, KindHex, "phoenix", r.collapse("phoenix", func(ctx context.Context) (string, error) {
		return r.hex.LatestStableVersion(ctx, "phoenix")
	}))

	r.add(catalog.SourceCursor, KindCursor, "latest", r.collapse("cursor", r.cursor.Latest))

	// Registry sources.
	r.add(catalog.SourceRails, KindRubyGems, "rails", r.collapse("rails", func(ctx context.Context) (string, error) {
		return r.rubygems.LatestVersion(ctx, "rails")
	}))
	r.add(catalog.SourceLaravel, KindPackagist, "laravel/framework", r.collapse("laravel", func(ctx context.Context) (string, error) {
		v, err := r.packagist.LatestVersion(ctx, "laravel/framework")
		return version.Normalize(v), err
	}))
	r.add(catalog.SourceSpringBoot, KindMaven, "org.springframework.boot:spring-boot", r.collapse("spring-boot", func(ctx context.Context) (string, error) {
		return r.maven.LatestVersion(ctx, "org.springframework.boot:spring-boot")
	}))
	r.add(catalog.SourceTokio, KindCrates, "tokio", r.collapse("tokio", func(ctx context.Context) (string, error) {
		return r.crates.LatestVersion(ctx, "tokio")
	}))

	// Relay-proxied endpoints.
	r.add(catalog.SourceJava, KindProxied, r.adoptium.LatestGAURL(), r.java())
	r.add(catalog.SourceR, KindProxied, r.rhub.ReleaseURL(), r.rLang())
	r.add(catalog.SourceGitLabRunner, KindProxied, r.gitlab.ReleasesURL("gitlab-org/gitlab-runner"), r.gitlabRunner())

	// Protocol versions change rarely enough to pin.
	for src, v := range map[catalog.Source]string{
		catalog.SourceHTTP:  "3",
		catalog.SourceTLS:   "1.3",
		catalog.SourceOAuth: "2.1",
	} {
		r.add(src, KindStatic, v, static(v))
	}
}

func static(v string) Func {
	return func(context.Context) string { return v }
}
