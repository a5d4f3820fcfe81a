package version

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() {
		Version, Commit, Date = oldVersion, oldCommit, oldDate
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{name: "dev build", version: "dev", commit: unknown, date: unknown, want: "colormaestro version dev ("},
		{name: "release build", version: "1.2.0", commit: "0123456789abcdef", date: "2026-01-02T03:04:05Z", want: "colormaestro version 1.2.0 (commit: 01234567, built: 2026-01-02T03:04:05Z"},
		{name: "short commit", version: "1.2.0", commit: "abc", date: "2026-01-02T03:04:05Z", want: "(commit: abc, built:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, tt.commit, tt.date)
			assert.Contains(t, String(), tt.want)
		})
	}
}

func TestJSON(t *testing.T) {
	withBuildInfo(t, "1.0.0", "deadbeef", "2026-01-01T00:00:00Z")

	data, err := JSON()
	require.NoError(t, err)

	var info Info
	require.NoError(t, json.Unmarshal(data, &info))
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "deadbeef", info.Commit)
	assert.NotEmpty(t, info.Platform)
	assert.Equal(t, "1.0.0", Short())
}
