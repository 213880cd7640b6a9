package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		info    BuildInfo
		wantOut []string
	}{
		{
			name:    "release",
			info:    BuildInfo{Version: "0.1.0", Commit: "abc123", BuildDate: "2026-01-02"},
			wantOut: []string{"site v0.1.0", "datastar", "abc123", "2026-01-02"},
		},
		{
			name:    "dev build",
			info:    BuildInfo{Version: "dev", Commit: "unknown", BuildDate: "unknown"},
			wantOut: []string{"site vdev", "**commit**: unknown"},
		},
		{
			name:    "go version filled in",
			info:    BuildInfo{Version: "1.2.3", GoVersion: "go1.99"},
			wantOut: []string{"site v1.2.3", "go1.99"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loadProject(t)

			out, err := execute(t, NewVersionCommand(tt.info))
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestNewVersionCommand_JSON(t *testing.T) {
	cfg := loadProject(t)
	cfg.OutputFormat = "json"

	out, err := execute(t, NewVersionCommand(BuildInfo{Version: "0.2.0", Commit: "deadbeef"}))
	require.NoError(t, err)

	got := decode[BuildInfo](t, out)
	assert.Equal(t, "0.2.0", got.Version)
	assert.Equal(t, "deadbeef", got.Commit)
	assert.NotEmpty(t, got.GoVersion, "runtime version is used when unset")
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand(BuildInfo{Version: "test"})

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}
