package rubygems

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

func TestClient_LatestVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gems/rails.json":
			w.Write([]byte(`{"name":"rails","version":"8.0.1","downloads":500000000}`))
		case "/gems/blank.json":
			w.Write([]byte(`{"name":"blank"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := NewClient(time.Second).WithBaseURL(server.URL)
	ctx := context.Background()

	v, err := c.LatestVersion(ctx, "rails")
	if err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}
	if v != "8.0.1" {
		t.Errorf("version = %q, want 8.0.1", v)
	}

	if _, err := c.LatestVersion(ctx, "blank"); !errors.Is(err, integrations.ErrNoVersion) {
		t.Errorf("blank gem error = %v, want ErrNoVersion", err)
	}
	if _, err := c.LatestVersion(ctx, "nope"); !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("missing gem error = %v, want ErrNotFound", err)
	}
}
