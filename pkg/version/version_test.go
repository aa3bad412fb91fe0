package version

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"docker prefix", "docker-v29.2.1", "29.2.1"},
		{"go prefix", "go1.22.0", "1.22.0"},
		{"swift prefix and release suffix", "swift-6.2.3-RELEASE", "6.2.3"},
		{"lowercase release suffix", "5.0.1-release", "5.0.1"},
		{"sqlite version prefix", "version-3.51.2", "3.51.2"},
		{"sqlite typo prefix", "vesion-3.45.1", "3.45.1"},
		{"v prefix", "v1.2.3", "1.2.3"},
		{"only one v stripped", "vv1.2.3", "v1.2.3"},
		{"bare version", "1.2.3", "1.2.3"},
		{"unmatched passes through", "release-2024-01", "release-2024-01"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.tag); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	tags := []string{
		"docker-v29.2.1",
		"go1.22.0",
		"swift-6.2.3-RELEASE",
		"version-3.51.2",
		"vesion-3.45.1",
		"v1.2.3",
		"1.2.3",
		"v18.0.0-rc.1",
		"26.0",
		"",
	}
	for _, tag := range tags {
		once := Normalize(tag)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", tag, twice, once)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.3.0", "1.2.9", 1},
		{"1.2.9", "1.3.0", -1},
		{"1.2", "1.2.0", 0},
		{"1.2.0", "1.2", 0},
		{"1.10.0", "1.9.0", 1},
		{"2", "1.99.99", 1},
		{"3.51.2", "3.45.1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Non-numeric segments are a known limitation: comparison stops at the
// first one and reports equality. These cases pin that behaviour so that a
// change to it is deliberate.
func TestCompareNonNumericLimitation(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"1.2.0-beta", "1.2.0"},
		{"1.2.0-beta", "1.2.1"},
		{"abc", "1.0.0"},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != 0 {
			t.Errorf("Compare(%q, %q) = %d, want 0 (non-numeric limitation)", tt.a, tt.b, got)
		}
	}

	// Numeric segments before the non-numeric one still decide.
	if got := Compare("2.0.0-beta", "1.9.9"); got <= 0 {
		t.Errorf("Compare(2.0.0-beta, 1.9.9) = %d, want > 0", got)
	}
}

func TestBest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"newest not first", []string{"version-3.45.1", "version-3.51.2", "vesion-3.50.0"}, "3.51.2"},
		{"first wins ties", []string{"v1.2", "1.2.0"}, "1.2"},
		{"skips empty", []string{"", "v", "v0.1.0"}, "0.1.0"},
		{"all empty", []string{"", "v"}, ""},
		{"none", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Best(tt.candidates); got != tt.want {
				t.Errorf("Best(%v) = %q, want %q", tt.candidates, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
