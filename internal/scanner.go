package internal

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Artifact is one discovered on-disk unit of source data, ready to hand
// to the matching parser.
type Artifact struct {
	Path   string
	Source Source
	Mtime  time.Time
}

// ScanArtifacts discovers parseable artifacts under the configured roots.
// Roots that do not exist are silently empty, so "no data" and "crash"
// stay distinguishable for callers. Artifacts unmodified since the cutoff
// are filtered out before any parser sees them; a zero cutoff disables
// the filter.
func ScanArtifacts(paths StoragePaths, cutoff time.Time) []Artifact {
	var artifacts []Artifact

	artifacts = append(artifacts, scanClaudeLogs(paths.ClaudeProjects)...)

	if paths.GlobalStorage != "" {
		dbPath := paths.GlobalStorageDBPath()
		if info, err := os.Stat(dbPath); err == nil && !info.IsDir() {
			artifacts = append(artifacts, Artifact{
				Path:   dbPath,
				Source: SourceCursorComposer,
				Mtime:  info.ModTime(),
			})
		}
	}

	artifacts = append(artifacts, scanWorkspaceStores(paths.WorkspaceStorage)...)

	if cutoff.IsZero() {
		return artifacts
	}
	fresh := artifacts[:0]
	for _, a := range artifacts {
		if a.Mtime.After(cutoff) {
			fresh = append(fresh, a)
		} else {
			LogDebug("Skipping unmodified artifact %s", a.Path)
		}
	}
	return fresh
}

func scanClaudeLogs(root string) []Artifact {
	if root == "" {
		return nil
	}
	var artifacts []Artifact
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".jsonl" {
			return nil
		}
		if strings.Contains(filepath.Base(path), "sessions-index") {
			return nil
		}
		artifacts = append(artifacts, Artifact{
			Path:   path,
			Source: SourceClaudeCode,
			Mtime:  info.ModTime(),
		})
		return nil
	})
	return artifacts
}

func scanWorkspaceStores(root string) []Artifact {
	if root == "" {
		return nil
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var artifacts []Artifact
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dbPath := filepath.Join(root, entry.Name(), "state.vscdb")
		info, err := os.Stat(dbPath)
		if err != nil || info.IsDir() {
			continue
		}
		artifacts = append(artifacts, Artifact{
			Path:   dbPath,
			Source: SourceCursorCopilot,
			Mtime:  info.ModTime(),
		})
	}
	return artifacts
}
