package internal

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("storage detection only supports linux and darwin")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".claude", "projects"), cfg.ClaudeProjects)
	assert.NotEmpty(t, cfg.GlobalStorage)
	assert.NotEmpty(t, cfg.WorkspaceStorage)
	assert.Empty(t, cfg.RemoteURL)
}

func TestLoadConfigOverlay(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("storage detection only supports linux and darwin")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".config", "sessionsync")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	content := `
claude_projects = "~/logs/claude"
remote_url = "https://sync.example.com"
remote_token = "tok"
`
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "claude"), cfg.ClaudeProjects)
	assert.Equal(t, "https://sync.example.com", cfg.RemoteURL)
	assert.Equal(t, "tok", cfg.RemoteToken)

	paths := cfg.StoragePaths()
	assert.Equal(t, cfg.ClaudeProjects, paths.ClaudeProjects)
}
