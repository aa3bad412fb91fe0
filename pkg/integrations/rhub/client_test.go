package rhub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Release(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rversions/r-release" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"version":"4.4.2","date":"2024-10-31T08:08:28.000000Z","nickname":"Pile of Leaves"}`))
	}))
	defer server.Close()

	c := NewClient(time.Second).WithBaseURL(server.URL)
	if got := c.ReleaseURL(); got != server.URL+"/rversions/r-release" {
		t.Errorf("ReleaseURL = %q", got)
	}

	v, err := c.Release(context.Background())
	if err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if v != "4.4.2" {
		t.Errorf("version = %q, want 4.4.2", v)
	}
}
