package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// StoragePaths holds the detected source roots for all supported formats.
type StoragePaths struct {
	ClaudeProjects   string // Claude Code JSONL logs, per-project dirs
	GlobalStorage    string // Cursor globalStorage directory
	WorkspaceStorage string // Cursor workspaceStorage directory
}

// DetectStoragePaths detects the default source roots for the current OS.
func DetectStoragePaths() (StoragePaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return StoragePaths{}, fmt.Errorf("failed to get home directory: %w", err)
	}

	var cursorBase string
	switch runtime.GOOS {
	case "darwin":
		cursorBase = filepath.Join(home, "Library/Application Support/Cursor/User")
	case "linux":
		cursorBase = filepath.Join(home, ".config/Cursor/User")
	default:
		return StoragePaths{}, fmt.Errorf("unsupported OS: %s (only macOS and Linux are supported)", runtime.GOOS)
	}

	return StoragePaths{
		ClaudeProjects:   filepath.Join(home, ".claude", "projects"),
		GlobalStorage:    filepath.Join(cursorBase, "globalStorage"),
		WorkspaceStorage: filepath.Join(cursorBase, "workspaceStorage"),
	}, nil
}

// GlobalStorageDBPath returns the path to the globalStorage state.vscdb.
func (sp StoragePaths) GlobalStorageDBPath() string {
	return filepath.Join(sp.GlobalStorage, "state.vscdb")
}
