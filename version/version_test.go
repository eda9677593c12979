package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	origVersion, origHash := Version, CommitHash
	t.Cleanup(func() { Version, CommitHash = origVersion, origHash })

	tests := []struct {
		name    string
		version string
		hash    string
		want    string
	}{
		{"unknown hash", "1.2.3", "unknown", "1.2.3"},
		{"empty hash", "1.2.3", "", "1.2.3"},
		{"full hash", "1.2.3", "abcdef0123456789", "1.2.3 (abcdef0)"},
		{"exactly seven", "1.2.3", "abcdef0", "1.2.3 (abcdef0)"},
		{"short hash", "1.2.3", "abc", "1.2.3 (abc)"},
	}

	for _, tt := range tests {
		Version, CommitHash = tt.version, tt.hash
		if got := GetFullVersion(); got != tt.want {
			t.Fatalf("%s: GetFullVersion() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
