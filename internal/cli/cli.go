package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/latest-stack/internal/config"
	"github.com/matzehuels/latest-stack/pkg/buildinfo"
	"github.com/matzehuels/latest-stack/pkg/cache"
	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/errors"
	"github.com/matzehuels/latest-stack/pkg/resolve"
	"github.com/matzehuels/latest-stack/pkg/source"
	"github.com/matzehuels/latest-stack/pkg/versioncache"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "latest-stack"

	// unknownVersion is shown in place of a version that could not be resolved.
	unknownVersion = "—"

	// advisory is printed once when no version at all could be resolved.
	advisory = "Could not fetch versions (GitHub API rate limit?). Set GITHUB_TOKEN or try again later."
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// cfg is loaded before any command runs.
	cfg *config.Config

	catalogPath  string
	cacheBackend string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "latest-stack shows the latest released version of popular tech stacks",
		Long:         `latest-stack resolves the latest released version of languages, frameworks, databases and tools from GitHub and upstream registries, caching results for an hour.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "catalog TOML file (default: embedded catalog, or LATEST_STACK_CATALOG)")
	root.PersistentFlags().StringVar(&c.cacheBackend, "cache-backend", "", "cache backend: file, redis, mongo or none (default: LATEST_STACK_CACHE_BACKEND)")

	root.AddCommand(c.versionsCommand())
	root.AddCommand(c.getCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.sourcesCommand())
	root.AddCommand(c.dashboardCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration, applies flag overrides and, at debug level,
// registers logging hooks.
func (c *CLI) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.catalogPath != "" {
		cfg.Catalog.Path = c.catalogPath
	}
	if c.cacheBackend != "" {
		cfg.Cache.Backend = c.cacheBackend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	if cfg.GitHub.Token == "" {
		c.Logger.Debug("GITHUB_TOKEN not set, GitHub lookups are rate limited")
	}
	if c.Logger.GetLevel() <= log.DebugLevel {
		registerLogHooks(c.Logger)
	}
	return nil
}

// settings returns the loaded configuration, loading defaults if a command
// runs without the root pre-run (tests).
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		cfg, err := config.LoadFrom(map[string]string{})
		if err != nil {
			panic(err) // defaults always parse
		}
		c.cfg = cfg
	}
	return c.cfg
}

// =============================================================================
// Component Factories
// =============================================================================

// loadCatalog returns the configured catalog and logs lint findings.
func (c *CLI) loadCatalog() (*catalog.Catalog, error) {
	cat := catalog.Default()
	if path := c.settings().Catalog.Path; path != "" {
		var err error
		if cat, err = catalog.LoadFile(path); err != nil {
			return nil, err
		}
	}
	for _, issue := range cat.Lint() {
		c.Logger.Debug("catalog", "issue", issue)
	}
	return cat, nil
}

// newRegistry builds the source registry from configuration.
func (c *CLI) newRegistry() *source.Registry {
	cfg := c.settings()
	return source.NewRegistry(source.Config{
		GitHubToken: cfg.GitHub.Token,
		Logger:      c.Logger,
		HTTPTimeout: cfg.Resolve.HTTPTimeout,
	})
}

// newResolver builds a resolver over a fresh registry.
func (c *CLI) newResolver() *resolve.Resolver {
	return resolve.New(c.newRegistry(), resolve.Options{
		Concurrency: c.settings().Resolve.Concurrency,
		Logger:      c.Logger,
	})
}

// newCache opens the configured backend. Failures fall back to no caching,
// since a broken cache never fails a command.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	cfg := c.settings()
	if noCache || cfg.Cache.Backend == cache.BackendNone {
		return cache.NewNullCache()
	}

	dir, err := cacheDir()
	if err != nil && cfg.Cache.Dir == "" {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache()
	}

	backend, err := cache.Open(ctx, cfg.CacheOptions(dir))
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "backend", cfg.Cache.Backend, "err", err)
		return cache.NewNullCache()
	}
	return backend
}

// newManager wires cache, store and resolver. The returned function closes
// the cache after waiting for background revalidation.
func (c *CLI) newManager(ctx context.Context, noCache bool) (*versioncache.Manager, func()) {
	backend := c.newCache(ctx, noCache)
	store := versioncache.NewStore(backend, versioncache.Options{
		TTL:    c.settings().Cache.TTL,
		Logger: c.Logger,
	})
	m := versioncache.NewManager(store, c.newResolver(), c.Logger)
	return m, func() {
		m.Wait()
		if err := backend.Close(); err != nil {
			c.Logger.Debug("closing cache", "err", err)
		}
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/latest-stack/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// displayVersion renders v, or the unknown marker when v is empty.
func displayVersion(v string) string {
	if v == "" {
		return unknownVersion
	}
	return v
}

// stackFilter keeps stacks matching category (if set) and ids (if any).
func stackFilter(category string, ids []string) (func(catalog.Stack) bool, error) {
	if category != "" && !catalog.Category(category).Known() {
		return nil, errors.New(errors.ErrCodeUnknownCategory, "unknown category %q", category)
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return func(s catalog.Stack) bool {
		if category != "" && string(s.Category) != category {
			return false
		}
		return len(want) == 0 || want[s.ID]
	}, nil
}
