package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferProjectRootSegment(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		wantName   string
		wantPath   string
	}{
		{
			name:       "projects root",
			candidates: []string{"/Users/kay/projects/widget/src/main.go"},
			wantName:   "widget",
			wantPath:   "/Users/kay/projects/widget",
		},
		{
			name:       "code root capitalized",
			candidates: []string{"/home/kay/Code/api-server/internal"},
			wantName:   "api-server",
			wantPath:   "/home/kay/Code/api-server",
		},
		{
			name:       "first matching candidate wins",
			candidates: []string{"/tmp/scratch.txt", "/home/kay/src/tool/x.go", "/home/kay/src/other/y.go"},
			wantName:   "tool",
			wantPath:   "/home/kay/src/tool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, path := InferProject(tt.candidates, "")
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestInferProjectFallbacks(t *testing.T) {
	// No known root segment: last two segments joined.
	name, path := InferProject([]string{"/opt/things/widget"}, "")
	assert.Equal(t, "things/widget", name)
	assert.Equal(t, "/opt/things/widget", path)

	// No candidates but a workspace folder: its basename.
	name, path = InferProject(nil, "/data/acme-app")
	assert.Equal(t, "acme-app", name)
	assert.Equal(t, "/data/acme-app", path)

	// Nothing at all is a valid outcome.
	name, path = InferProject(nil, "")
	assert.Empty(t, name)
	assert.Empty(t, path)
}

func TestCanonicalPathCollapses(t *testing.T) {
	assert.Equal(t, "b/c/d/e", CanonicalPath("/very/long/prefix/a/b/c/d/e"))
	assert.Equal(t, "/a/b", CanonicalPath("/a/b"))
	assert.Equal(t, "", CanonicalPath(""))
}

func TestProjectMergeCommutative(t *testing.T) {
	a := &ProjectInfo{
		Name:            "widget",
		Path:            "projects/widget",
		WorkspaceIDs:    []string{"ws-1"},
		SessionCounts:   map[Source]int{SourceClaudeCode: 2},
		LastActivityIso: "2024-01-01T00:00:00Z",
	}
	b := &ProjectInfo{
		Name:            "widget",
		Path:            "projects/widget",
		WorkspaceIDs:    []string{"ws-2", "ws-1"},
		SessionCounts:   map[Source]int{SourceClaudeCode: 1, SourceCursorComposer: 3},
		LastActivityIso: "2024-05-01T00:00:00Z",
	}

	merge := func(infos ...*ProjectInfo) *ProjectInfo {
		agg := NewProjectAggregator()
		for _, info := range infos {
			agg.Merge(info)
		}
		projects := agg.Projects()
		require.Len(t, projects, 1)
		return projects[0]
	}

	ab := merge(a, b)
	ba := merge(b, a)

	assert.Equal(t, ab.SessionCounts, ba.SessionCounts)
	assert.Equal(t, ab.WorkspaceIDs, ba.WorkspaceIDs)
	assert.Equal(t, ab.LastActivityIso, ba.LastActivityIso)

	assert.Equal(t, map[Source]int{SourceClaudeCode: 3, SourceCursorComposer: 3}, ab.SessionCounts)
	assert.Equal(t, []string{"ws-1", "ws-2"}, ab.WorkspaceIDs)
	assert.Equal(t, "2024-05-01T00:00:00Z", ab.LastActivityIso)
}

func TestAggregatorUncategorized(t *testing.T) {
	agg := NewProjectAggregator()
	agg.AddSession(&Session{
		TimestampIso: "2024-01-01T00:00:00Z",
		Metadata:     Metadata{Source: SourceCursorCopilot},
	})
	projects := agg.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, UncategorizedProject, projects[0].Name)
	assert.Equal(t, "", projects[0].Path)
	assert.Equal(t, 1, projects[0].SessionCounts[SourceCursorCopilot])
}

func TestAggregatorSumsAcrossSources(t *testing.T) {
	agg := NewProjectAggregator()
	for _, source := range []Source{SourceClaudeCode, SourceCursorComposer, SourceClaudeCode} {
		agg.AddSession(&Session{
			TimestampIso: "2024-01-01T00:00:00Z",
			Metadata: Metadata{
				ProjectPath: "projects/widget",
				ProjectName: "widget",
				Source:      source,
			},
		})
	}
	projects := agg.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, map[Source]int{SourceClaudeCode: 2, SourceCursorComposer: 1}, projects[0].SessionCounts)
}
