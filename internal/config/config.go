// Package config loads latest-stack settings from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/matzehuels/latest-stack/pkg/cache"
	"github.com/matzehuels/latest-stack/pkg/errors"
)

// Config holds all configuration for the application.
type Config struct {
	GitHub  GitHubConfig
	Catalog CatalogConfig
	Cache   CacheConfig
	Resolve ResolveConfig
	Server  ServerConfig
}

// GitHubConfig holds GitHub API credentials.
type GitHubConfig struct {
	// Token is optional. Without it GitHub lookups are rate limited sooner.
	Token string `env:"GITHUB_TOKEN"`
}

// CatalogConfig selects the stack catalog.
type CatalogConfig struct {
	Path string `env:"LATEST_STACK_CATALOG"` // empty means the embedded catalog
}

// CacheConfig selects and configures the version cache backend.
type CacheConfig struct {
	Backend string        `env:"LATEST_STACK_CACHE_BACKEND" envDefault:"file"`
	Dir     string        `env:"LATEST_STACK_CACHE_DIR"`
	TTL     time.Duration `env:"LATEST_STACK_CACHE_TTL" envDefault:"1h"`

	RedisAddr     string `env:"LATEST_STACK_REDIS_ADDR"`
	RedisPassword string `env:"LATEST_STACK_REDIS_PASSWORD"`
	RedisDB       int    `env:"LATEST_STACK_REDIS_DB" envDefault:"0"`

	MongoURI        string `env:"LATEST_STACK_MONGO_URI"`
	MongoDatabase   string `env:"LATEST_STACK_MONGO_DATABASE" envDefault:"latest_stack"`
	MongoCollection string `env:"LATEST_STACK_MONGO_COLLECTION" envDefault:"cache"`
}

// ResolveConfig tunes outgoing lookups.
type ResolveConfig struct {
	HTTPTimeout time.Duration `env:"LATEST_STACK_HTTP_TIMEOUT" envDefault:"10s"`
	Concurrency int           `env:"LATEST_STACK_CONCURRENCY" envDefault:"0"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Listen string `env:"LATEST_STACK_LISTEN" envDefault:":8080"`
}

// Load loads configuration from the process environment.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom loads configuration from the given variables instead of the
// process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(&cfg.GitHub, opts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing github config")
	}
	if err := env.ParseWithOptions(&cfg.Catalog, opts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing catalog config")
	}
	if err := env.ParseWithOptions(&cfg.Cache, opts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing cache config")
	}
	if err := env.ParseWithOptions(&cfg.Resolve, opts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing resolve config")
	}
	if err := env.ParseWithOptions(&cfg.Server, opts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing server config")
	}

	return cfg, nil
}

// Validate checks if the configuration is valid. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, errors.New(errors.ErrCodeInvalidConfig, format, args...))
	}

	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendNone:
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			invalid("LATEST_STACK_REDIS_ADDR is required for the redis cache backend")
		}
		if c.Cache.RedisDB < 0 {
			invalid("LATEST_STACK_REDIS_DB must not be negative")
		}
	case cache.BackendMongo:
		if c.Cache.MongoURI == "" {
			invalid("LATEST_STACK_MONGO_URI is required for the mongo cache backend")
		}
	default:
		invalid("unknown cache backend %q (want file, redis, mongo or none)", c.Cache.Backend)
	}

	if c.Cache.TTL <= 0 {
		invalid("LATEST_STACK_CACHE_TTL must be positive, got %s", c.Cache.TTL)
	}
	if c.Resolve.HTTPTimeout <= 0 {
		invalid("LATEST_STACK_HTTP_TIMEOUT must be positive, got %s", c.Resolve.HTTPTimeout)
	}
	if c.Resolve.Concurrency < 0 {
		invalid("LATEST_STACK_CONCURRENCY must not be negative, got %d", c.Resolve.Concurrency)
	}
	if c.Server.Listen == "" {
		invalid("LATEST_STACK_LISTEN must not be empty")
	}

	return errors.Join(errs...)
}

// CacheOptions converts the cache settings for [cache.Open]. dir is used
// when no directory was configured.
func (c *Config) CacheOptions(dir string) cache.Options {
	if c.Cache.Dir != "" {
		dir = c.Cache.Dir
	}
	return cache.Options{
		Backend:         c.Cache.Backend,
		Dir:             dir,
		RedisAddr:       c.Cache.RedisAddr,
		RedisPassword:   c.Cache.RedisPassword,
		RedisDB:         c.Cache.RedisDB,
		MongoURI:        c.Cache.MongoURI,
		MongoDatabase:   c.Cache.MongoDatabase,
		MongoCollection: c.Cache.MongoCollection,
	}
}
