package crates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

func TestClient_LatestVersion(t *testing.T) {
	var ua string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/crates/tokio":
			w.Write([]byte(`{"crate":{"name":"tokio","max_version":"1.43.0-rc.1","max_stable_version":"1.42.0"}}`))
		case "/crates/prerelease-only":
			w.Write([]byte(`{"crate":{"name":"prerelease-only","max_version":"0.1.0-alpha"}}`))
		case "/crates/empty":
			w.Write([]byte(`{"crate":{"name":"empty"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := NewClient(time.Second).WithBaseURL(server.URL)
	ctx := context.Background()

	v, err := c.LatestVersion(ctx, "tokio")
	if err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}
	if v != "1.42.0" {
		t.Errorf("version = %q, want 1.42.0", v)
	}
	if !strings.HasPrefix(ua, "latest-stack") {
		t.Errorf("User-Agent = %q", ua)
	}

	if v, _ := c.LatestVersion(ctx, "prerelease-only"); v != "0.1.0-alpha" {
		t.Errorf("fallback version = %q", v)
	}
	if _, err := c.LatestVersion(ctx, "empty"); !errors.Is(err, integrations.ErrNoVersion) {
		t.Errorf("empty crate error = %v, want ErrNoVersion", err)
	}
	if _, err := c.LatestVersion(ctx, "missing"); !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("missing crate error = %v, want ErrNotFound", err)
	}
}
