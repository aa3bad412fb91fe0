package maven

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		coord      string
		wantGroup  string
		wantArtif  string
		wantErrors bool
	}{
		{coord: "org.springframework.boot:spring-boot", wantGroup: "org.springframework.boot", wantArtif: "spring-boot"},
		{coord: "com.google.guava:guava:33.0.0", wantGroup: "com.google.guava", wantArtif: "guava"},
		{coord: "guava", wantErrors: true},
		{coord: ":guava", wantErrors: true},
		{coord: "com.google.guava:", wantErrors: true},
	}

	for _, tt := range tests {
		t.Run(tt.coord, func(t *testing.T) {
			g, a, err := parseCoordinate(tt.coord)
			if (err != nil) != tt.wantErrors {
				t.Fatalf("parseCoordinate(%q) error = %v", tt.coord, err)
			}
			if !tt.wantErrors && (g != tt.wantGroup || a != tt.wantArtif) {
				t.Errorf("parseCoordinate(%q) = %s, %s", tt.coord, g, a)
			}
		})
	}
}

func TestClient_LatestVersion(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query().Get("q")
		switch query {
		case `g:"org.springframework.boot" AND a:"spring-boot"`:
			w.Write([]byte(`{"response":{"numFound":1,"docs":[{"g":"org.springframework.boot","a":"spring-boot","latestVersion":"3.4.1"}]}}`))
		case `g:"only.v" AND a:"x"`:
			w.Write([]byte(`{"response":{"numFound":1,"docs":[{"v":"1.2.3"}]}}`))
		default:
			w.Write([]byte(`{"response":{"numFound":0,"docs":[]}}`))
		}
	}))
	defer server.Close()

	c := NewClient(time.Second).WithBaseURL(server.URL)
	ctx := context.Background()

	v, err := c.LatestVersion(ctx, "org.springframework.boot:spring-boot")
	if err != nil {
		t.Fatalf("LatestVersion failed: %v (query %q)", err, query)
	}
	if v != "3.4.1" {
		t.Errorf("version = %q, want 3.4.1", v)
	}

	if v, _ := c.LatestVersion(ctx, "only.v:x"); v != "1.2.3" {
		t.Errorf("fallback to v = %q, want 1.2.3", v)
	}

	if _, err := c.LatestVersion(ctx, "no.such:artifact"); !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("zero results error = %v, want ErrNotFound", err)
	}
}
