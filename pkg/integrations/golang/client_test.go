package golang

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

func TestClient_LatestStable(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{
			name: "skips unstable",
			body: `[{"version":"go1.24rc1","stable":false},{"version":"go1.23.4","stable":true},{"version":"go1.22.10","stable":true}]`,
			want: "go1.23.4",
		},
		{
			name:    "no stable",
			body:    `[{"version":"go1.24rc1","stable":false}]`,
			wantErr: integrations.ErrNoVersion,
		},
		{
			name:    "malformed",
			body:    `{"oops":true}`,
			wantErr: integrations.ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/dl/" || r.URL.Query().Get("mode") != "json" {
					http.NotFound(w, r)
					return
				}
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := NewClient(time.Second).WithBaseURL(server.URL).LatestStable(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LatestStable() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("LatestStable() = %q, want %q", got, tt.want)
			}
		})
	}
}
