package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/sessionsync/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanArtifacts(t *testing.T) {
	root := t.TempDir()
	paths := StoragePaths{
		ClaudeProjects:   filepath.Join(root, "claude"),
		GlobalStorage:    filepath.Join(root, "globalStorage"),
		WorkspaceStorage: filepath.Join(root, "workspaceStorage"),
	}

	testutil.WriteJSONL(t, filepath.Join(paths.ClaudeProjects, "proj-a", "s1.jsonl"), []string{`{}`})
	testutil.WriteJSONL(t, filepath.Join(paths.ClaudeProjects, "proj-a", "notes.txt"), []string{"not a log"})
	testutil.CreateGlobalStorageDB(t, paths.GlobalStorageDBPath(), nil)
	testutil.CreateWorkspaceDB(t, filepath.Join(paths.WorkspaceStorage, "ws-1", "state.vscdb"), nil)

	artifacts := ScanArtifacts(paths, time.Time{})
	require.Len(t, artifacts, 3)

	bySource := map[Source]int{}
	for _, a := range artifacts {
		bySource[a.Source]++
	}
	assert.Equal(t, 1, bySource[SourceClaudeCode])
	assert.Equal(t, 1, bySource[SourceCursorComposer])
	assert.Equal(t, 1, bySource[SourceCursorCopilot])
}

func TestScanArtifactsMtimeCutoff(t *testing.T) {
	root := t.TempDir()
	paths := StoragePaths{ClaudeProjects: filepath.Join(root, "claude")}

	oldLog := filepath.Join(paths.ClaudeProjects, "old.jsonl")
	newLog := filepath.Join(paths.ClaudeProjects, "new.jsonl")
	testutil.WriteJSONL(t, oldLog, []string{`{}`})
	testutil.WriteJSONL(t, newLog, []string{`{}`})

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldLog, stale, stale))

	artifacts := ScanArtifacts(paths, time.Now().Add(-time.Hour))
	require.Len(t, artifacts, 1)
	assert.Equal(t, newLog, artifacts[0].Path)
}

func TestScanArtifactsMissingRoots(t *testing.T) {
	paths := StoragePaths{
		ClaudeProjects:   "/nonexistent/claude",
		GlobalStorage:    "/nonexistent/global",
		WorkspaceStorage: "/nonexistent/workspace",
	}
	assert.Empty(t, ScanArtifacts(paths, time.Time{}), "missing roots yield an empty result, not an error")
}
