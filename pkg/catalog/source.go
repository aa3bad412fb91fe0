package catalog

// Source names a dedicated version adapter. A stack with a recognised
// Source is resolved by that adapter instead of its GitHub repository.
type Source string

// Version sources. The set is closed: every member must have an adapter in
// the source registry.
const (
	SourceGCP          Source = "gcp"
	SourceJava         Source = "java"
	SourcePython       Source = "python"
	SourceGo           Source = "go"
	SourceRuby         Source = "ruby"
	SourcePHP          Source = "php"
	SourceAWS          Source = "aws"
	SourcePostgreSQL   Source = "postgresql"
	SourceMongoDB      Source = "mongodb"
	SourceMySQL        Source = "mysql"
	SourceDjango       Source = "django"
	SourceElixir       Source = "elixir"
	SourceDart         Source = "dart"
	SourceSQLite       Source = "sqlite"
	SourceExpo         Source = "expo"
	SourceGitLabRunner Source = "gitlab-runner"
	SourceR            Source = "r"
	SourceVisualStudio Source = "visualstudio"
	SourceCursor       Source = "cursor"
	SourceQwik         Source = "qwik"
	SourcePhoenix      Source = "phoenix"
	SourceAlpineJS     Source = "alpinejs"
	SourceHTMX         Source = "htmx"
	SourceApolloServer Source = "apollo-server"
	SourceGraphQL      Source = "graphql"
	SourceDeno         Source = "deno"
	SourceCorepack     Source = "corepack"
	SourceOpenSearch   Source = "opensearch"
	SourceDynamoDB     Source = "dynamodb"
	SourceJUnit        Source = "junit"
	SourceNix          Source = "nix"
	SourceTalos        Source = "talos"

	SourceHTTP       Source = "http"
	SourceTLS        Source = "tls"
	SourceOAuth      Source = "oauth"
	SourceJSONSchema Source = "json-schema"

	SourceRails      Source = "rails"
	SourceLaravel    Source = "laravel"
	SourceSpringBoot Source = "spring-boot"
	SourceTokio      Source = "tokio"
)

var allSources = []Source{
	SourceGCP, SourceJava, SourcePython, SourceGo, SourceRuby, SourcePHP,
	SourceAWS, SourcePostgreSQL, SourceMongoDB, SourceMySQL, SourceDjango,
	SourceElixir, SourceDart, SourceSQLite, SourceExpo, SourceGitLabRunner,
	SourceR, SourceVisualStudio, SourceCursor, SourceQwik, SourcePhoenix,
	SourceAlpineJS, SourceHTMX, SourceApolloServer, SourceGraphQL,
	SourceDeno, SourceCorepack, SourceOpenSearch, SourceDynamoDB,
	SourceJUnit, SourceNix, SourceTalos,
	SourceHTTP, SourceTLS, SourceOAuth, SourceJSONSchema,
	SourceRails, SourceLaravel, SourceSpringBoot, SourceTokio,
}

var knownSources = func() map[Source]bool {
	m := make(map[Source]bool, len(allSources))
	for _, s := range allSources {
		m[s] = true
	}
	return m
}()

// AllSources returns every known version source in declaration order.
// The returned slice is a copy.
func AllSources() []Source {
	return append([]Source(nil), allSources...)
}

// Known reports whether s is a member of the closed source set.
func (s Source) Known() bool { return knownSources[s] }

func (s Source) String() string { return string(s) }
