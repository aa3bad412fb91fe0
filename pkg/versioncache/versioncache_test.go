package versioncache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/latest-stack/pkg/cache"
	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/resolve"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeResolver returns a fixed map and counts passes.
type fakeResolver struct {
	result    resolve.VersionMap
	passes    atomic.Int32
	cancelled atomic.Bool
}

func (f *fakeResolver) ResolveAll(ctx context.Context, _ []catalog.Stack) resolve.VersionMap {
	f.passes.Add(1)
	f.cancelled.Store(ctx.Err() != nil)
	return f.result.Clone()
}

func newStore(t *testing.T) (*Store, cache.Cache, *clock) {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	clk := &clock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewStore(fc, Options{Now: clk.Now}), fc, clk
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newStore(t)

	require.NoError(t, store.Save(ctx, resolve.VersionMap{"react": "19.0.0", "vue": "", "go": "1.23.4"}))

	got, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, resolve.VersionMap{"react": "19.0.0", "go": "1.23.4"}, got)
}

func TestStoreSaveAllEmptyWritesNothing(t *testing.T) {
	ctx := context.Background()
	store, backend, _ := newStore(t)

	require.NoError(t, store.Save(ctx, resolve.VersionMap{"bare": "", "other": ""}))

	_, present, err := backend.Get(ctx, Key)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, _, clk := newStore(t)

	require.NoError(t, store.Save(ctx, resolve.VersionMap{"react": "19.0.0"}))

	clk.Advance(DefaultTTL - time.Minute)
	_, ok := store.Load(ctx)
	assert.True(t, ok, "record should be valid before the TTL")

	clk.Advance(2 * time.Minute)
	_, ok = store.Load(ctx)
	assert.False(t, ok, "record should be absent after the TTL")
}

func TestStoreInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"corrupt", "{not json"},
		{"empty data", `{"data":{},"expires":9999999999999}`},
		{"only empty values", `{"data":{"react":""},"expires":9999999999999}`},
		{"already expired", `{"data":{"react":"19.0.0"},"expires":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, backend, _ := newStore(t)
			require.NoError(t, backend.Set(ctx, Key, []byte(tt.data), time.Hour))

			_, ok := store.Load(ctx)
			assert.False(t, ok)
		})
	}
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newStore(t)
	require.NoError(t, store.Save(ctx, resolve.VersionMap{"react": "19.0.0"}))

	require.NoError(t, store.Clear(ctx))

	_, ok := store.Load(ctx)
	assert.False(t, ok)
}

func TestInitialState(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newStore(t)

	cold := store.InitialState(ctx)
	assert.True(t, cold.IsLoading)
	assert.Empty(t, cold.Versions)

	require.NoError(t, store.Save(ctx, resolve.VersionMap{"react": "19.0.0"}))

	warm := store.InitialState(ctx)
	assert.False(t, warm.IsLoading)
	assert.Equal(t, resolve.VersionMap{"react": "19.0.0"}, warm.Versions)
}

func TestFetchCold(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newStore(t)
	res := &fakeResolver{result: resolve.VersionMap{"react": "19.0.0", "bare": ""}}
	m := NewManager(store, res, nil)

	var updates atomic.Int32
	got := m.Fetch(ctx, nil, func(resolve.VersionMap) { updates.Add(1) })
	m.Wait()

	assert.Equal(t, resolve.VersionMap{"react": "19.0.0", "bare": ""}, got)
	assert.EqualValues(t, 1, res.passes.Load())
	assert.Zero(t, updates.Load(), "a cold fetch returns its result directly")

	cached, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, resolve.VersionMap{"react": "19.0.0"}, cached, "empty values are never cached")
}

func TestFetchWarmUnchanged(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newStore(t)
	require.NoError(t, store.Save(ctx, resolve.VersionMap{"react": "19.0.0"}))

	res := &fakeResolver{result: resolve.VersionMap{"react": "19.0.0"}}
	m := NewManager(store, res, nil)

	var updates atomic.Int32
	got := m.Fetch(ctx, nil, func(resolve.VersionMap) { updates.Add(1) })
	m.Wait()

	assert.Equal(t, resolve.VersionMap{"react": "19.0.0"}, got)
	assert.EqualValues(t, 1, res.passes.Load())
	assert.Zero(t, updates.Load())
}

func TestFetchWarmChanged(t *testing.T) {
	ctx := context.Background()
	store, _, clk := newStore(t)
	require.NoError(t, store.Save(ctx, resolve.VersionMap{"react": "18.3.1", "vue": "3.5.0"}))

	// vue fails this pass; its old value must survive.
	res := &fakeResolver{result: resolve.VersionMap{"react": "19.0.0", "vue": ""}}
	m := NewManager(store, res, nil)

	var (
		mu      sync.Mutex
		updates []resolve.VersionMap
	)
	got := m.Fetch(ctx, nil, func(v resolve.VersionMap) {
		mu.Lock()
		defer mu.Unlock()
		updates = append(updates, v)
	})
	assert.Equal(t, resolve.VersionMap{"react": "18.3.1", "vue": "3.5.0"}, got, "warm fetch serves the snapshot")

	m.Wait()

	require.Len(t, updates, 1)
	want := resolve.VersionMap{"react": "19.0.0", "vue": "3.5.0"}
	assert.Equal(t, want, updates[0])

	clk.Advance(time.Minute)
	cached, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, want, cached)
}

func TestFetchWarmIgnoresCancellation(t *testing.T) {
	store, _, _ := newStore(t)
	require.NoError(t, store.Save(context.Background(), resolve.VersionMap{"react": "18.3.1"}))

	res := &fakeResolver{result: resolve.VersionMap{"react": "19.0.0"}}
	m := NewManager(store, res, nil)

	ctx, cancel := context.WithCancel(context.Background())
	var updated atomic.Bool
	m.Fetch(ctx, nil, func(resolve.VersionMap) { updated.Store(true) })
	cancel()
	m.Wait()

	assert.True(t, updated.Load())
	assert.False(t, res.cancelled.Load(), "background pass must not inherit cancellation")
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newStore(t)
	require.NoError(t, store.Save(ctx, resolve.VersionMap{"react": "18.3.1", "vue": "3.5.0"}))

	res := &fakeResolver{result: resolve.VersionMap{"react": "19.0.0", "vue": ""}}
	m := NewManager(store, res, nil)

	got := m.Refresh(ctx, nil)

	assert.Equal(t, resolve.VersionMap{"react": "19.0.0", "vue": "3.5.0"}, got)
	assert.EqualValues(t, 1, res.passes.Load())
}

func TestMerge(t *testing.T) {
	old := resolve.VersionMap{"a": "1.0.0", "b": "2.0.0"}
	fresh := resolve.VersionMap{"a": "1.1.0", "b": "", "c": "3.0.0", "d": ""}

	got := Merge(old, fresh)

	assert.Equal(t, resolve.VersionMap{"a": "1.1.0", "b": "2.0.0", "c": "3.0.0"}, got)
	assert.Equal(t, "1.0.0", old["a"], "inputs must not be modified")
}

func TestChanged(t *testing.T) {
	tests := []struct {
		name       string
		prev, next resolve.VersionMap
		want       bool
	}{
		{"identical", resolve.VersionMap{"a": "1"}, resolve.VersionMap{"a": "1"}, false},
		{"both empty", resolve.VersionMap{}, nil, false},
		{"value differs", resolve.VersionMap{"a": "1"}, resolve.VersionMap{"a": "2"}, true},
		{"size differs", resolve.VersionMap{"a": "1"}, resolve.VersionMap{"a": "1", "b": "2"}, true},
		{"same size different keys", resolve.VersionMap{"a": "1"}, resolve.VersionMap{"b": "1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Changed(tt.prev, tt.next))
		})
	}
}
