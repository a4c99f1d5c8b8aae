package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the process-wide configuration, constructed once at startup
// and passed into whatever needs it.
type Config struct {
	ClaudeProjects   string `toml:"claude_projects"`
	GlobalStorage    string `toml:"cursor_global_storage"`
	WorkspaceStorage string `toml:"cursor_workspace_storage"`

	RemoteURL   string `toml:"remote_url"`
	RemoteToken string `toml:"remote_token"`
}

// LoadConfig builds the configuration from detected defaults, overlaid
// with ~/.config/sessionsync/config.toml when it exists.
func LoadConfig() (*Config, error) {
	paths, err := DetectStoragePaths()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ClaudeProjects:   paths.ClaudeProjects,
		GlobalStorage:    paths.GlobalStorage,
		WorkspaceStorage: paths.WorkspaceStorage,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}
	cfgPath := filepath.Join(home, ".config", "sessionsync", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.ClaudeProjects = expandHome(cfg.ClaudeProjects, home)
	cfg.GlobalStorage = expandHome(cfg.GlobalStorage, home)
	cfg.WorkspaceStorage = expandHome(cfg.WorkspaceStorage, home)

	return cfg, nil
}

// StoragePaths returns the configured source roots.
func (c *Config) StoragePaths() StoragePaths {
	return StoragePaths{
		ClaudeProjects:   c.ClaudeProjects,
		GlobalStorage:    c.GlobalStorage,
		WorkspaceStorage: c.WorkspaceStorage,
	}
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
