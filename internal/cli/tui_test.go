package cli

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/latest-stack/pkg/cache"
	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/resolve"
	"github.com/matzehuels/latest-stack/pkg/versioncache"
)

func dashboardCatalog() *catalog.Catalog {
	return &catalog.Catalog{Stacks: []catalog.Stack{
		{ID: "go", Name: "Go", Category: catalog.CategoryLanguage},
		{ID: "rust", Name: "Rust", Category: catalog.CategoryLanguage},
		{ID: "react", Name: "React", Category: catalog.CategoryFrontend},
	}}
}

func update(t *testing.T, m DashboardModel, msg tea.Msg) (DashboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(DashboardModel)
	if !ok {
		t.Fatalf("Update returned %T, want DashboardModel", next)
	}
	return dm, cmd
}

func TestDashboardColdStart(t *testing.T) {
	state := versioncache.State{Versions: resolve.VersionMap{}, IsLoading: true}
	m := NewDashboardModel(dashboardCatalog(), state, nil, nil, nil)

	if !m.Loading {
		t.Fatal("cold start should be loading")
	}
	if !strings.Contains(m.View(), "Loading versions") {
		t.Errorf("view should show loading status:\n%s", m.View())
	}
	if strings.Contains(m.View(), advisory) {
		t.Error("advisory must not show while loading")
	}

	m, cmd := update(t, m, fetchedMsg{versions: resolve.VersionMap{"go": "1.23.4", "rust": ""}})
	if m.Loading || m.Updating {
		t.Error("fetched result should end loading")
	}
	if cmd != nil {
		t.Error("a cold fetch should not wait for updates")
	}

	view := m.View()
	for _, want := range []string{"Languages", "Frontend", "1.23.4", unknownVersion} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDashboardWarmStartUpdates(t *testing.T) {
	updates := make(chan resolve.VersionMap, 1)
	state := versioncache.State{Versions: resolve.VersionMap{"go": "1.23.3"}}
	m := NewDashboardModel(dashboardCatalog(), state, nil, nil, updates)

	if m.Loading {
		t.Fatal("warm start should not be loading")
	}
	if !strings.Contains(m.View(), "1.23.3") {
		t.Error("warm start should show cached versions")
	}

	m, cmd := update(t, m, fetchedMsg{versions: state.Versions, revalidating: true})
	if !m.Updating {
		t.Error("model should report revalidation in progress")
	}
	if cmd == nil {
		t.Fatal("expected a command waiting for updates")
	}

	updates <- resolve.VersionMap{"go": "1.23.4"}
	msg := cmd()
	if _, ok := msg.(updatedMsg); !ok {
		t.Fatalf("got %T, want updatedMsg", msg)
	}
	m, cmd = update(t, m, msg)
	if !strings.Contains(m.View(), "1.23.4") {
		t.Error("view should show updated version")
	}

	close(updates)
	msg = cmd()
	if _, ok := msg.(revalidatedMsg); !ok {
		t.Fatalf("got %T, want revalidatedMsg", msg)
	}
	m, _ = update(t, m, msg)
	if m.Updating {
		t.Error("revalidation should be finished")
	}
}

func TestDashboardAdvisory(t *testing.T) {
	state := versioncache.State{Versions: resolve.VersionMap{}, IsLoading: true}
	m := NewDashboardModel(dashboardCatalog(), state, nil, nil, nil)

	m, _ = update(t, m, fetchedMsg{versions: resolve.VersionMap{"go": "", "rust": ""}})

	if !strings.Contains(m.View(), advisory) {
		t.Errorf("view should show the advisory when nothing resolved:\n%s", m.View())
	}
}

func TestDashboardNavigation(t *testing.T) {
	state := versioncache.State{Versions: resolve.VersionMap{}}
	m := NewDashboardModel(dashboardCatalog(), state, nil, nil, nil)

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	m, _ = update(t, m, down)
	m, _ = update(t, m, down)
	m, _ = update(t, m, down)
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped at last stack)", m.Cursor)
	}
	m, _ = update(t, m, up)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestDashboardRefresh(t *testing.T) {
	refreshed := false
	refresh := func() tea.Msg {
		refreshed = true
		return fetchedMsg{versions: resolve.VersionMap{"go": "1.24.0"}}
	}
	state := versioncache.State{Versions: resolve.VersionMap{"go": "1.23.4"}}
	m := NewDashboardModel(dashboardCatalog(), state, nil, refresh, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if !m.Updating || cmd == nil {
		t.Fatal("r should start a refresh")
	}

	// A second press while refreshing is ignored.
	_, again := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if again != nil {
		t.Error("refresh should not restart while one is running")
	}

	m, _ = update(t, m, refresh())
	if !refreshed || m.Updating {
		t.Error("refresh result should be applied")
	}
	if !strings.Contains(m.View(), "1.24.0") {
		t.Error("view should show refreshed version")
	}
}

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "never"},
		{"now", time.Now(), "just now"},
		{"minutes", time.Now().Add(-5 * time.Minute), "5m ago"},
		{"hours", time.Now().Add(-3 * time.Hour), "3h ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.t); got != tt.want {
				t.Errorf("formatRelativeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

type countingCache struct {
	cache.Cache
	gets atomic.Int32
}

func (c *countingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.gets.Add(1)
	return c.Cache.Get(ctx, key)
}

type fixedResolver resolve.VersionMap

func (r fixedResolver) ResolveAll(context.Context, []catalog.Stack) resolve.VersionMap {
	return resolve.VersionMap(r).Clone()
}

func TestDashboardFetchReadsCacheOnce(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cc := &countingCache{Cache: fc}
	store := versioncache.NewStore(cc, versioncache.Options{})
	if err := store.Save(ctx, resolve.VersionMap{"go": "1.23.3"}); err != nil {
		t.Fatal(err)
	}
	m := versioncache.NewManager(store, fixedResolver{"go": "1.23.4"}, nil)
	stacks := dashboardCatalog().Stacks

	state := store.InitialState(ctx)
	updates := make(chan resolve.VersionMap, 1)
	msg := dashboardFetch(ctx, m, stacks, state, updates)()

	fetched, ok := msg.(fetchedMsg)
	if !ok {
		t.Fatalf("got %T, want fetchedMsg", msg)
	}
	if !fetched.revalidating {
		t.Error("a warm start should revalidate")
	}
	if fetched.versions["go"] != "1.23.3" {
		t.Errorf("go = %q, want cached 1.23.3", fetched.versions["go"])
	}

	var got []resolve.VersionMap
	for v := range updates {
		got = append(got, v)
	}
	if len(got) != 1 || got[0]["go"] != "1.23.4" {
		t.Errorf("updates = %v, want one map with go 1.23.4", got)
	}
	if n := cc.gets.Load(); n != 2 {
		t.Errorf("cache reads = %d, want 2 (initial state and fetch)", n)
	}
}
