//go:build integration

package github

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/matzehuels/latest-stack/pkg/integrations"
)

func TestLatestRelease_Integration(t *testing.T) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		t.Skip("GITHUB_TOKEN not set, skipping integration test")
	}

	client := NewClient(token, 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tests := []struct {
		name     string
		owner    string
		repo     string
		wantErr  bool
		notFound bool
	}{
		{"golang/go has no releases", "golang", "go", true, true},
		{"denoland/deno", "denoland", "deno", false, false},
		{"nonexistent", "nonexistent-owner-12345", "nonexistent-repo", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := client.LatestRelease(ctx, tt.owner, tt.repo)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LatestRelease(%q, %q) error = %v, wantErr %v", tt.owner, tt.repo, err, tt.wantErr)
			}
			if tt.notFound && !errors.Is(err, integrations.ErrNotFound) {
				t.Errorf("error = %v, want ErrNotFound", err)
			}
			if !tt.wantErr && tag == "" {
				t.Error("expected a tag name")
			}
		})
	}
}
