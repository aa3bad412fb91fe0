// Package server exposes resolved versions over a JSON HTTP API.
//
// The server keeps one version snapshot in memory, guarded by a
// read/write mutex, and refreshes it on a fixed interval through the
// version cache manager. Handlers only ever read the snapshot.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/resolve"
	"github.com/matzehuels/latest-stack/pkg/versioncache"
)

// Options configures a [Server].
type Options struct {
	// RefreshInterval defaults to versioncache.DefaultTTL.
	RefreshInterval time.Duration

	// Logger receives request and refresh logs. Nil discards.
	Logger *log.Logger
}

// Server serves the version API.
type Server struct {
	catalog  *catalog.Catalog
	manager  *versioncache.Manager
	logger   *log.Logger
	interval time.Duration

	mu        sync.RWMutex
	versions  resolve.VersionMap
	updatedAt time.Time
	gen       uint64

	refreshMu sync.Mutex
}

// New creates a Server for the stacks of cat.
func New(cat *catalog.Catalog, manager *versioncache.Manager, opts Options) *Server {
	s := &Server{
		catalog:  cat,
		manager:  manager,
		logger:   opts.Logger,
		interval: opts.RefreshInterval,
		versions: resolve.VersionMap{},
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.interval <= 0 {
		s.interval = versioncache.DefaultTTL
	}
	return s
}

// Prime loads the initial snapshot. A warm cache is served at once and
// swapped for revalidated data when it arrives.
func (s *Server) Prime(ctx context.Context) {
	gen := s.generation()
	v := s.manager.Fetch(ctx, s.catalog.Stacks, s.store)
	// Revalidation may already have stored a newer map.
	s.storeIf(v, gen)
}

// Refresh resolves every stack now and replaces the snapshot. Concurrent
// calls are serialized.
func (s *Server) Refresh(ctx context.Context) resolve.VersionMap {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	v := s.manager.Refresh(ctx, s.catalog.Stacks)
	s.store(v)
	return v
}

// Snapshot returns a copy of the current versions and when they were set.
func (s *Server) Snapshot() (resolve.VersionMap, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions.Clone(), s.updatedAt
}

func (s *Server) generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

func (s *Server) store(v resolve.VersionMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(v)
}

// storeIf replaces the snapshot only if nothing was stored since gen.
func (s *Server) storeIf(v resolve.VersionMap, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	s.set(v)
	return true
}

func (s *Server) set(v resolve.VersionMap) {
	s.versions = v.Clone()
	s.updatedAt = time.Now().UTC()
	s.gen++
}

// Run primes the snapshot, serves on addr and refreshes on the configured
// interval until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.Prime(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case err, ok := <-errCh:
			if ok {
				return err
			}
			return nil
		case <-ticker.C:
			v := s.Refresh(ctx)
			s.logger.Debug("scheduled refresh complete", "known", len(v.Known()))
		case <-ctx.Done():
			s.logger.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			s.manager.Wait()
			return ctx.Err()
		}
	}
}
