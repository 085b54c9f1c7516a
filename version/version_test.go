package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	cases := []struct {
		version, commit, date string
		expected              string
	}{
		{"dev", "unknown", "unknown", "dev"},
		{"1.2.0", "abc123", "unknown", "1.2.0 (abc123)"},
		{"1.2.0", "abc123", "2026-01-02", "1.2.0 (abc123, built 2026-01-02)"},
	}

	for _, c := range cases {
		Version, GitCommit, BuildDate = c.version, c.commit, c.date
		if got := GetFullVersion(); got != c.expected {
			t.Errorf("GetFullVersion failed: expected %q, got %q", c.expected, got)
		}
	}
	if GetVersion() != "1.2.0" {
		t.Errorf("GetVersion failed: expected 1.2.0, got %q", GetVersion())
	}
}
