package versioncache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/latest-stack/pkg/cache"
	"github.com/matzehuels/latest-stack/pkg/observability"
	"github.com/matzehuels/latest-stack/pkg/resolve"
)

// Key is the cache key of the persisted record. The suffix changes whenever
// the set of adapters or the record layout changes, so old records are
// never decoded.
const Key = "latest-stack-versions-v7"

// DefaultTTL is how long a saved record stays valid.
const DefaultTTL = time.Hour

// Options configures a [Store].
type Options struct {
	// TTL defaults to DefaultTTL.
	TTL time.Duration

	// Logger receives cache warnings. Nil discards.
	Logger *log.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// State is what a consumer shows before any resolution has finished.
type State struct {
	Versions  resolve.VersionMap
	IsLoading bool
}

// record is the persisted layout.
type record struct {
	Data    map[string]string `json:"data"`
	Expires int64             `json:"expires"` // epoch milliseconds
}

// Store reads and writes the version record.
type Store struct {
	cache  cache.Cache
	ttl    time.Duration
	now    func() time.Time
	logger *log.Logger
}

// NewStore creates a Store over c.
func NewStore(c cache.Cache, opts Options) *Store {
	s := &Store{
		cache:  c,
		ttl:    opts.TTL,
		now:    opts.Now,
		logger: opts.Logger,
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return s
}

// TTL returns the record lifetime.
func (s *Store) TTL() time.Duration { return s.ttl }

// Load returns the cached versions. The second result is false when the
// record is missing, unparsable, expired, or empty. Backend errors are
// logged and reported as a miss.
func (s *Store) Load(ctx context.Context) (resolve.VersionMap, bool) {
	hooks := observability.Cache()

	data, ok, err := s.cache.Get(ctx, Key)
	if err != nil {
		s.logger.Warn("version cache read failed", "key", Key, "err", err)
		hooks.OnCacheMiss(ctx, Key, "error")
		return nil, false
	}
	if !ok {
		hooks.OnCacheMiss(ctx, Key, "missing")
		return nil, false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Debug("version cache record unreadable", "key", Key, "err", err)
		hooks.OnCacheMiss(ctx, Key, "corrupt")
		return nil, false
	}
	if s.now().UnixMilli() >= rec.Expires {
		hooks.OnCacheMiss(ctx, Key, "expired")
		return nil, false
	}

	versions := resolve.VersionMap(rec.Data).Known()
	if len(versions) == 0 {
		hooks.OnCacheMiss(ctx, Key, "empty")
		return nil, false
	}
	hooks.OnCacheHit(ctx, Key, len(versions))
	return versions, true
}

// Save persists the non-empty values of m with a fresh expiry. A map with
// no non-empty value writes nothing.
func (s *Store) Save(ctx context.Context, m resolve.VersionMap) error {
	known := m.Known()
	if len(known) == 0 {
		return nil
	}

	data, err := json.Marshal(record{
		Data:    known,
		Expires: s.now().Add(s.ttl).UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encode version record: %w", err)
	}
	if err := s.cache.Set(ctx, Key, data, s.ttl); err != nil {
		return fmt.Errorf("write version record: %w", err)
	}
	observability.Cache().OnCacheSet(ctx, Key, len(known))
	return nil
}

// Clear removes the record.
func (s *Store) Clear(ctx context.Context) error {
	return s.cache.Delete(ctx, Key)
}

// InitialState reports what to show before resolution: the cached snapshot
// when one is valid, otherwise an empty map with IsLoading set.
func (s *Store) InitialState(ctx context.Context) State {
	if cached, ok := s.Load(ctx); ok {
		return State{Versions: cached}
	}
	return State{Versions: resolve.VersionMap{}, IsLoading: true}
}
